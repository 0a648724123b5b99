package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

func TestHobbyRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewHobbyRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hobbie.hobbies", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Pottery"},
			{Key: "creator", Value: "alice"},
		}))

		h, err := repo.FindByID(context.Background(), oid.Hex())
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if h.ID != oid.Hex() || !h.OwnedBy("alice") {
			t.Fatalf("unexpected hobby: %+v", h)
		}
	})

	mt.Run("find by invalid id", func(mt *mtest.T) {
		repo := NewHobbyRepository(mt.DB)
		if _, err := repo.FindByID(context.Background(), "not-an-id"); !errors.Is(err, domain.ErrHobbyNotFound) {
			t.Fatalf("expected ErrHobbyNotFound, got %v", err)
		}
	})

	mt.Run("delete missing hobby", func(mt *mtest.T) {
		repo := NewHobbyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, domain.ErrHobbyNotFound) {
			t.Fatalf("expected ErrHobbyNotFound, got %v", err)
		}
	})

	mt.Run("saving twice", func(mt *mtest.T) {
		repo := NewHobbyRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
		)

		ctx := context.Background()
		if err := repo.AddFavorite(ctx, "carla", "h1"); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		if err := repo.AddFavorite(ctx, "carla", "h1"); !errors.Is(err, domain.ErrAlreadySaved) {
			t.Fatalf("expected ErrAlreadySaved, got %v", err)
		}
	})

	mt.Run("remove when not saved", func(mt *mtest.T) {
		repo := NewHobbyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.RemoveFavorite(context.Background(), "carla", "h1"); !errors.Is(err, domain.ErrNotSaved) {
			t.Fatalf("expected ErrNotSaved, got %v", err)
		}
	})
}
