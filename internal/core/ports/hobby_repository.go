package ports

import (
	"context"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// HobbyRepository persists hobbies and per-user favorites.
type HobbyRepository interface {
	Create(ctx context.Context, h *domain.Hobby) (*domain.Hobby, error)
	FindByID(ctx context.Context, id string) (*domain.Hobby, error)
	Update(ctx context.Context, h *domain.Hobby) error
	Delete(ctx context.Context, id string) error

	// AddFavorite returns domain.ErrAlreadySaved when the pair exists.
	AddFavorite(ctx context.Context, username, hobbyID string) error
	// RemoveFavorite returns domain.ErrNotSaved when the pair is absent.
	RemoveFavorite(ctx context.Context, username, hobbyID string) error
	IsFavorite(ctx context.Context, username, hobbyID string) (bool, error)
	ListFavorites(ctx context.Context, username string) ([]*domain.Hobby, error)
}
