package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

const departmentsCollection = "departments"

// DepartmentRepository implements ports.DepartmentRepository using MongoDB.
// It holds the whole database because the cascade delete touches the user,
// questionnaire, and evaluation collections too.
type DepartmentRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{db: db, col: db.Collection(departmentsCollection)}
}

type departmentDoc struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// Name keeps the caller's (trimmed) casing for display; NormalizedName is
	// the canonical form the uniqueness comparison runs on.
	Name           string `bson:"name"`
	NormalizedName string `bson:"normalized_name"`
	CreatedAt      int64  `bson:"created_at"`
}

func (d departmentDoc) toDomain() *domain.Department {
	return &domain.Department{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: unixToTime(d.CreatedAt),
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	doc := departmentDoc{
		Name:           dept.Name,
		NormalizedName: domain.NormalizeDepartmentName(dept.Name),
		CreatedAt:      dept.CreatedAt.Unix(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *dept
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DepartmentRepository) FindByNormalizedName(ctx context.Context, normalized string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"normalized_name": normalized})
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var depts []*domain.Department
	for cur.Next(ctx) {
		var d departmentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		depts = append(depts, d.toDomain())
	}
	return depts, cur.Err()
}

// DeleteCascade removes the department, its users, its questionnaires, and
// their evaluation responses in a single transaction, so a reader never sees
// a half-deleted department.
func (r *DepartmentRepository) DeleteCascade(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		questionnaires := r.db.Collection(questionnairesCollection)

		cur, err := questionnaires.Find(sc, bson.M{"department_id": id},
			options.Find().SetProjection(bson.M{"_id": 1}))
		if err != nil {
			return nil, err
		}
		var qids []string
		for cur.Next(sc) {
			var doc struct {
				ID primitive.ObjectID `bson:"_id"`
			}
			if err := cur.Decode(&doc); err != nil {
				cur.Close(sc)
				return nil, err
			}
			qids = append(qids, doc.ID.Hex())
		}
		cur.Close(sc)
		if err := cur.Err(); err != nil {
			return nil, err
		}

		if len(qids) > 0 {
			if _, err := r.db.Collection(evaluationsCollection).DeleteMany(sc,
				bson.M{"questionnaire_id": bson.M{"$in": qids}}); err != nil {
				return nil, err
			}
		}
		if _, err := questionnaires.DeleteMany(sc, bson.M{"department_id": id}); err != nil {
			return nil, err
		}
		if _, err := r.db.Collection(usersCollection).DeleteMany(sc, bson.M{"department_id": id}); err != nil {
			return nil, err
		}

		res, err := r.col.DeleteOne(sc, bson.M{"_id": oid})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, nil
	})
	return err
}

// EnsureIndexes creates the unique normalized-name index.
func (r *DepartmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "normalized_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *DepartmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Department, error) {
	var d departmentDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return d.toDomain(), nil
}
