package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

const usersNS = "hobbie.users"

func TestAuthRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by username", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "username", Value: "alice"},
			{Key: "email", Value: "alice@example.com"},
			{Key: "password_hash", Value: "$2a$12$digest"},
			{Key: "roles", Value: bson.A{"BUSINESS_USER"}},
			{Key: "kind", Value: "BUSINESS_USER"},
			{Key: "created_at", Value: time.Unix(1700000000, 0)},
		}))

		u, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("FindByUsername returned error: %v", err)
		}
		if u.ID != oid.Hex() || u.Email != "alice@example.com" || u.PrimaryRole() != domain.RoleBusinessUser {
			t.Fatalf("unexpected user: %+v", u)
		}
		if u.Kind != domain.KindBusinessUser {
			t.Fatalf("expected kind BUSINESS_USER, got %s", u.Kind)
		}
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("save inserts new account", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := repo.Save(context.Background(), &domain.User{
			Username: "bob", Email: "bob@example.com", PasswordHash: "h", Roles: []domain.Role{domain.RoleUser}, Kind: domain.KindUser,
		})
		if err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
		if u.ID == "" {
			t.Fatalf("expected generated ID")
		}
	})

	mt.Run("save duplicate maps to ErrUserExists", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: hobbie.users index: email_1",
		}))

		_, err := repo.Save(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com"})
		if !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("save replaces existing account", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		id := primitive.NewObjectID().Hex()
		u, err := repo.Save(context.Background(), &domain.User{ID: id, Username: "bob", Email: "bob@example.com"})
		if err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
		if u.ID != id {
			t.Fatalf("expected ID %s to be kept, got %s", id, u.ID)
		}
	})

	mt.Run("save replace of missing account", func(mt *mtest.T) {
		repo := NewAuthRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		_, err := repo.Save(context.Background(), &domain.User{ID: primitive.NewObjectID().Hex(), Username: "bob"})
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
