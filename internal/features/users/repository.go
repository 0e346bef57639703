package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/studycoach/internal/database"
)

// Repository edits favorite and enrollment sets on user documents
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(database.UsersCollection)}
}

// AddToSet reports whether the user document matched. Adding an existing
// member still matches.
func (r *Repository) AddToSet(ctx context.Context, userID, field string, moduleID int) (bool, error) {
	return r.update(ctx, userID, bson.M{
		"$addToSet": bson.M{field: moduleID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

// Pull reports whether the user document matched
func (r *Repository) Pull(ctx context.Context, userID, field string, moduleID int) (bool, error) {
	return r.update(ctx, userID, bson.M{
		"$pull": bson.M{field: moduleID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *Repository) SetStudentProfile(ctx context.Context, userID, text string) (bool, error) {
	return r.update(ctx, userID, bson.M{
		"$set": bson.M{"studentProfile": text, "updatedAt": time.Now().UTC()},
	})
}

func (r *Repository) update(ctx context.Context, userID string, update bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// HasMember checks set membership with a fresh read
func (r *Repository) HasMember(ctx context.Context, userID, field string, moduleID int) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid, field: moduleID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindProfile returns nil, nil when the user does not exist
func (r *Repository) FindProfile(ctx context.Context, userID string) (*Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOne().SetProjection(bson.M{
		"name": 1, "studentProfile": 1, fieldFavorites: 1, fieldChosen: 1,
	})
	var profile Profile
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if profile.FavoriteModules == nil {
		profile.FavoriteModules = []int{}
	}
	if profile.ChosenModules == nil {
		profile.ChosenModules = []int{}
	}
	return &profile, nil
}
