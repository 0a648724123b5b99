package ports

import (
	"context"
	"time"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// IdentityProvider is the external login provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.ExternalProfile, error)
}

// StateStore keeps single-use anti-forgery state values for login redirects.
type StateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	// Consume reports whether state existed and deletes it.
	Consume(ctx context.Context, state string) (bool, error)
}

// FederatedLogin is the result of reconciling an external login.
type FederatedLogin struct {
	Token       string
	User        *domain.User
	Provisioned bool
}

type FederatedLoginService interface {
	Reconcile(ctx context.Context, profile domain.ExternalProfile) (*FederatedLogin, error)
}
