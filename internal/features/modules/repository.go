package modules

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/studycoach/internal/database"
)

// Repository reads the Modules collection
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(database.ModulesCollection)}
}

// EnsureIndexes creates the module_id lookup index
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "module_id", Value: 1}},
	})
	return err
}

// BuildFilter turns Filters into a Mongo query document
func BuildFilter(f Filters) bson.M {
	query := bson.M{}
	if f.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Name), "$options": "i"}
	}
	if f.Level != "" {
		query["level"] = f.Level
	}
	if f.StudyCredit != 0 {
		query["studycredit"] = f.StudyCredit
	}
	if f.Location != "" {
		// equality against an array field matches membership
		query["location"] = f.Location
	}
	if f.Difficulty != 0 {
		query["estimated_difficulty"] = f.Difficulty
	}
	if len(f.IDs) > 0 {
		query["module_id"] = bson.M{"$in": f.IDs}
	}
	return query
}

func (r *Repository) FindAll(ctx context.Context, f Filters) ([]Module, error) {
	opts := options.Find().SetSort(bson.D{{Key: "module_id", Value: 1}})
	return r.find(ctx, BuildFilter(f), opts)
}

// FindByModuleID returns nil, nil when the module does not exist
func (r *Repository) FindByModuleID(ctx context.Context, moduleID int) (*Module, error) {
	var module Module
	err := r.collection.FindOne(ctx, bson.M{"module_id": moduleID}).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *Repository) FindByModuleIDs(ctx context.Context, ids []int) ([]Module, error) {
	if len(ids) == 0 {
		return []Module{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "module_id", Value: 1}})
	return r.find(ctx, bson.M{"module_id": bson.M{"$in": ids}}, opts)
}

func (r *Repository) FindMinimalsByModuleIDs(ctx context.Context, ids []int) ([]ModuleMinimal, error) {
	if len(ids) == 0 {
		return []ModuleMinimal{}, nil
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "module_id": 1, "name": 1}).
		SetSort(bson.D{{Key: "module_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"module_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []ModuleMinimal{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Module, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []Module{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
