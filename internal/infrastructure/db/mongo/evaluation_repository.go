package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

const evaluationsCollection = "evaluation_responses"

// EvaluationRepository implements ports.EvaluationRepository using MongoDB.
type EvaluationRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewEvaluationRepository(db *mongo.Database) *EvaluationRepository {
	return &EvaluationRepository{db: db, col: db.Collection(evaluationsCollection)}
}

type evaluationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	QuestionnaireID string             `bson:"questionnaire_id"`
	Name            string             `bson:"name,omitempty"`
	Date            string             `bson:"date"`
	Time            string             `bson:"time"`
	ClientCategory  string             `bson:"client_category"`
	Ratings         []int              `bson:"ratings"`
	FeedbackType    string             `bson:"feedback_type"`
	FeedbackMessage string             `bson:"feedback_message"`
}

func (d evaluationDoc) toDomain() *domain.EvaluationResponse {
	return &domain.EvaluationResponse{
		ID:              d.ID.Hex(),
		QuestionnaireID: d.QuestionnaireID,
		Name:            d.Name,
		Date:            d.Date,
		Time:            d.Time,
		ClientCategory:  d.ClientCategory,
		Ratings:         d.Ratings,
		FeedbackType:    d.FeedbackType,
		FeedbackMessage: d.FeedbackMessage,
	}
}

func (r *EvaluationRepository) Insert(ctx context.Context, resp *domain.EvaluationResponse) (*domain.EvaluationResponse, error) {
	doc := evaluationDoc{
		QuestionnaireID: resp.QuestionnaireID,
		Name:            resp.Name,
		Date:            resp.Date,
		Time:            resp.Time,
		ClientCategory:  resp.ClientCategory,
		Ratings:         resp.Ratings,
		FeedbackType:    resp.FeedbackType,
		FeedbackMessage: resp.FeedbackMessage,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert evaluation: %w", err)
	}

	created := *resp
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByDepartment resolves the department's questionnaire ids first, then
// fetches every response against any of them. This is the read side of the
// questionnaire→response ownership.
func (r *EvaluationRepository) ListByDepartment(ctx context.Context, departmentID string) ([]*domain.EvaluationResponse, error) {
	qcur, err := r.db.Collection(questionnairesCollection).Find(ctx,
		bson.M{"department_id": departmentID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list department questionnaires: %w", err)
	}

	var qids []string
	for qcur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := qcur.Decode(&doc); err != nil {
			qcur.Close(ctx)
			return nil, fmt.Errorf("decode questionnaire id: %w", err)
		}
		qids = append(qids, doc.ID.Hex())
	}
	qcur.Close(ctx)
	if err := qcur.Err(); err != nil {
		return nil, err
	}

	if len(qids) == 0 {
		return []*domain.EvaluationResponse{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"questionnaire_id": bson.M{"$in": qids}})
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.EvaluationResponse{}
	for cur.Next(ctx) {
		var d evaluationDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode evaluation: %w", err)
		}
		out = append(out, d.toDomain())
	}
	return out, cur.Err()
}
