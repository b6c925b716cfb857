package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

const questionnairesCollection = "questionnaires"

// QuestionnaireRepository implements ports.QuestionnaireRepository using MongoDB.
type QuestionnaireRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewQuestionnaireRepository(db *mongo.Database) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db, col: db.Collection(questionnairesCollection)}
}

type questionnaireDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Content      string             `bson:"content"`
	DepartmentID string             `bson:"department_id"`
	CreatedBy    string             `bson:"created_by"`
	CreatedAt    int64              `bson:"created_at"`
	IsActive     bool               `bson:"is_active"`
}

func (d questionnaireDoc) toDomain() *domain.Questionnaire {
	return &domain.Questionnaire{
		ID:           d.ID.Hex(),
		Content:      d.Content,
		DepartmentID: d.DepartmentID,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    unixToTime(d.CreatedAt),
		IsActive:     d.IsActive,
	}
}

func (r *QuestionnaireRepository) Create(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	doc := questionnaireDoc{
		Content:      q.Content,
		DepartmentID: q.DepartmentID,
		CreatedBy:    q.CreatedBy,
		CreatedAt:    q.CreatedAt.Unix(),
		IsActive:     q.IsActive,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert questionnaire: %w", err)
	}

	created := *q
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindActive retrieves the questionnaire only when it is active at the
// instant of the query. A draft or unknown id is the same outcome.
func (r *QuestionnaireRepository) FindActive(ctx context.Context, id string) (*domain.Questionnaire, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionnaireNotFound
	}

	var d questionnaireDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "is_active": true}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionnaireNotFound
		}
		return nil, fmt.Errorf("find questionnaire: %w", err)
	}
	return d.toDomain(), nil
}

func (r *QuestionnaireRepository) ListAll(ctx context.Context) ([]*domain.Questionnaire, error) {
	return r.list(ctx, bson.M{})
}

func (r *QuestionnaireRepository) ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Questionnaire, error) {
	return r.list(ctx, bson.M{"department_id": departmentID})
}

// Activate deactivates every questionnaire of the department and activates
// the target, inside one transaction. When the target does not exist or
// belongs to another department the transaction aborts, which rolls the
// deactivation back: the department's active set is left unchanged. A reader
// therefore never observes zero or two active questionnaires for the
// department.
func (r *QuestionnaireRepository) Activate(ctx context.Context, departmentID, questionnaireID string) error {
	oid, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return domain.ErrQuestionnaireNotFound
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.col.UpdateMany(sc,
			bson.M{"department_id": departmentID},
			bson.M{"$set": bson.M{"is_active": false}},
		); err != nil {
			return nil, err
		}

		res, err := r.col.UpdateOne(sc,
			bson.M{"_id": oid, "department_id": departmentID},
			bson.M{"$set": bson.M{"is_active": true}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrQuestionnaireNotFound
		}
		return nil, nil
	})
	return err
}

// FindLatestActive returns the most recently created active questionnaire
// across all departments, serving the global public lookup.
func (r *QuestionnaireRepository) FindLatestActive(ctx context.Context) (*domain.Questionnaire, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var d questionnaireDoc
	if err := r.col.FindOne(ctx, bson.M{"is_active": true}, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveQuestionnaire
		}
		return nil, fmt.Errorf("find active questionnaire: %w", err)
	}
	return d.toDomain(), nil
}

func (r *QuestionnaireRepository) list(ctx context.Context, filter bson.M) ([]*domain.Questionnaire, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list questionnaires: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Questionnaire
	for cur.Next(ctx) {
		var d questionnaireDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode questionnaire: %w", err)
		}
		out = append(out, d.toDomain())
	}
	return out, cur.Err()
}
