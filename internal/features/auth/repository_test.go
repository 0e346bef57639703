package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and normalizes email", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &User{Email: " Sam@Example.com ", Password: "hash", Name: "Sam"}
		require.NoError(mt, repo.Create(context.Background(), user))
		require.False(mt, user.ID.IsZero())
		require.Equal(mt, "sam@example.com", user.Email)
		require.NotNil(mt, user.FavoriteModules)
	})

	mt.Run("create duplicate maps to email taken", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := repo.Create(context.Background(), &User{Email: "sam@example.com"})
		require.ErrorIs(mt, err, apperrors.ErrEmailTaken)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "studycoach.Users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "sam@example.com"},
			{Key: "name", Value: "Sam"},
			{Key: "favoriteModules", Value: bson.A{int32(101)}},
		}))

		user, err := repo.FindByEmail(context.Background(), "SAM@example.com")
		require.NoError(mt, err)
		require.Equal(mt, id, user.ID)
		require.Equal(mt, []int{101}, user.FavoriteModules)
	})

	mt.Run("find missing returns nil", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "studycoach.Users", mtest.FirstBatch))

		user, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		require.Nil(mt, user)
	})

	mt.Run("malformed id is treated as missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		user, err := repo.FindByID(context.Background(), "not-an-object-id")
		require.NoError(mt, err)
		require.Nil(mt, user)

		deleted, err := repo.Delete(context.Background(), "not-an-object-id")
		require.NoError(mt, err)
		require.False(mt, deleted)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "new@example.com"},
			{Key: "name", Value: "Sam"},
		}}))

		user, err := repo.Update(context.Background(), id.Hex(), bson.M{"email": "NEW@example.com"})
		require.NoError(mt, err)
		require.Equal(mt, "new@example.com", user.Email)
	})

	mt.Run("delete reports count", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		require.True(mt, deleted)
	})
}
