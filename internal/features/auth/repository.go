package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/studycoach/internal/database"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// Repository handles account documents in the Users collection
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(database.UsersCollection)}
}

// EnsureIndexes creates the unique email index
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new user. A duplicate email maps to ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, user *User) error {
	now := time.Now().UTC()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.FavoriteModules == nil {
		user.FavoriteModules = []int{}
	}
	if user.ChosenModules == nil {
		user.ChosenModules = []int{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user duplicate key error: %w", apperrors.ErrEmailTaken)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail returns nil, nil when no account uses the email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": NormalizeEmail(email)})
}

// FindByID returns nil, nil when the id is unknown or malformed
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update sets fields and returns the updated document, or nil, nil when absent
func (r *Repository) Update(ctx context.Context, userID string, updates bson.M) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	if email, ok := updates["email"].(string); ok {
		updates["email"] = NormalizeEmail(email)
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("user duplicate key error: %w", apperrors.ErrEmailInUse)
		}
		return nil, err
	}
	return &user, nil
}

// Delete reports whether a document was removed
func (r *Repository) Delete(ctx context.Context, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}
