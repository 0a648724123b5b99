package ports

import (
	"context"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// AuthRepository is the credential store. Implementations enforce uniqueness
// of both username and email and report a violation as domain.ErrUserExists.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save inserts the record when ID is empty and replaces it otherwise.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
