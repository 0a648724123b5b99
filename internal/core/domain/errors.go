package domain

import "errors"

// Authentication and authorization.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHashing            = errors.New("malformed password digest")
)

// Token validation. All of these surface to callers as ErrUnauthenticated.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Accounts.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrProvisioning = errors.New("federated account provisioning failed")
)

// Marketplace resources.
var (
	ErrHobbyNotFound = errors.New("hobby not found")
	ErrAlreadySaved  = errors.New("hobby already saved")
	ErrNotSaved      = errors.New("hobby not in saved list")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidInput  = errors.New("invalid input")
)
