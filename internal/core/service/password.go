package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

const (
	// MinPasswordCost is the lowest bcrypt work factor the policy accepts.
	MinPasswordCost     = 10
	DefaultPasswordCost = 12

	// bcrypt ignores everything past this many bytes.
	maxPasswordBytes = 72
)

// BcryptHasher implements ports.PasswordHasher. The cost is embedded in every
// digest, so raising it later does not invalidate existing hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost. Costs below MinPasswordCost fall
// back to DefaultPasswordCost; configuration rejects them before this point.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinPasswordCost {
		cost = DefaultPasswordCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", fmt.Errorf("hash password: %w", domain.ErrInvalidInput)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) (bool, error) {
	if len(plaintext) > maxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
}
