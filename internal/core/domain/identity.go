package domain

import (
	"context"
	"slices"
)

// Identity is the resolved caller of a request. It is attached to the request
// context by the authentication stage and never mutated afterwards.
type Identity struct {
	Username    string
	Roles       []Role
	DisplayName string
	Email       string
}

// HasAnyRole reports whether the identity holds at least one of roles.
func (id Identity) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if slices.Contains(id.Roles, r) {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	id.Roles = slices.Clone(id.Roles)
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Identity{}, false
	}
	id.Roles = slices.Clone(id.Roles)
	return id, true
}
