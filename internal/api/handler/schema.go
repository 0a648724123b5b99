package handler

import (
	"time"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Accounts ---

type signupRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=32"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"max=100"`
}

type registerBusinessRequest struct {
	Username     string `json:"username"      validate:"required,min=3,max=32"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6,max=72"`
	BusinessName string `json:"business_name" validate:"required,max=100"`
}

type authenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authenticateResponse struct {
	Token    string        `json:"token"`
	Username string        `json:"username"`
	Roles    []domain.Role `json:"roles"`
}

type accountResponse struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name,omitempty"`
	Roles       []domain.Role      `json:"roles"`
	Kind        domain.AccountKind `json:"kind"`
	CreatedAt   time.Time          `json:"created_at"`
}

func toAccountResponse(u *domain.User) accountResponse {
	return accountResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Roles:       u.Roles,
		Kind:        u.Kind,
		CreatedAt:   u.CreatedAt,
	}
}

type identityResponse struct {
	Username    string        `json:"username"`
	Roles       []domain.Role `json:"roles"`
	DisplayName string        `json:"display_name,omitempty"`
	Email       string        `json:"email,omitempty"`
}

// --- Hobbies ---

type hobbyRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"        validate:"required,max=120"`
	Slogan      string `json:"slogan"      validate:"max=200"`
	Intro       string `json:"intro"       validate:"max=500"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category"    validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Creator     string `json:"creator"     validate:"required"`
	ImageKey    string `json:"image_key"`
}

type isSavedResponse struct {
	Saved bool `json:"saved"`
}

// --- Files ---

type fileResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
