package ports

import (
	"context"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// HobbyInput carries the editable fields of a hobby.
type HobbyInput struct {
	ID          string
	Name        string
	Slogan      string
	Intro       string
	Description string
	Category    string
	Location    string
	Creator     string
	ImageKey    string
}

// HobbyService applies ownership rules on top of HobbyRepository. Every
// mutating method takes the acting identity and returns domain.ErrForbidden
// when it does not own the target.
type HobbyService interface {
	Create(ctx context.Context, actor domain.Identity, in HobbyInput) (*domain.Hobby, error)
	Update(ctx context.Context, actor domain.Identity, in HobbyInput) (*domain.Hobby, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
	Get(ctx context.Context, id string) (*domain.Hobby, error)

	Save(ctx context.Context, actor domain.Identity, username, hobbyID string) error
	Remove(ctx context.Context, actor domain.Identity, username, hobbyID string) error
	IsSaved(ctx context.Context, actor domain.Identity, username, hobbyID string) (bool, error)
	Saved(ctx context.Context, actor domain.Identity, username string) ([]*domain.Hobby, error)
}
