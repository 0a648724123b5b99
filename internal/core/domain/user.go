package domain

import (
	"slices"
	"time"
)

// Role is an authorization tag carried by accounts and tokens.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleBusinessUser Role = "BUSINESS_USER"
	RoleUser         Role = "USER"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBusinessUser, RoleUser:
		return true
	}
	return false
}

// AccountKind tags what kind of marketplace actor an account represents.
type AccountKind string

const (
	KindUser         AccountKind = "USER"
	KindBusinessUser AccountKind = "BUSINESS_USER"
	KindAdmin        AccountKind = "ADMIN"
)

// DefaultRole is the role granted to an account of the given kind at creation.
func (k AccountKind) DefaultRole() Role {
	switch k {
	case KindAdmin:
		return RoleAdmin
	case KindBusinessUser:
		return RoleBusinessUser
	default:
		return RoleUser
	}
}

// User is the persisted credential record of an account.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email,omitempty"`
	DisplayName  string      `json:"display_name,omitempty"`
	PasswordHash string      `json:"-"`
	Roles        []Role      `json:"roles"`
	Kind         AccountKind `json:"kind"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Identity returns the request-scoped view of the account.
func (u *User) Identity() Identity {
	return Identity{
		Username:    u.Username,
		Roles:       slices.Clone(u.Roles),
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}

// PrimaryRole is the first assigned role; accounts carry at least one.
func (u *User) PrimaryRole() Role {
	if len(u.Roles) == 0 {
		return RoleUser
	}
	return u.Roles[0]
}
