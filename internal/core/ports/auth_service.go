package ports

import (
	"context"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// RegisterInput carries the fields of a local account registration.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Kind        domain.AccountKind
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// PasswordHasher is the one-way hashing policy for local credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on mismatch and domain.ErrHashing only when the
	// stored digest cannot be parsed.
	Verify(plaintext, digest string) (bool, error)
}

// TokenIssuer mints bearer tokens.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// TokenValidator checks bearer tokens and returns the identity they assert.
type TokenValidator interface {
	Validate(token string) (domain.Identity, error)
}
