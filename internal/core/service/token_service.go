package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

const DefaultTokenTTL = 24 * time.Hour

type tokenClaims struct {
	Roles []domain.Role `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens. It holds no state
// besides the signing key, so every replica validates independently.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token asserting id's username and roles.
func (s *TokenService) Issue(id domain.Identity) (string, error) {
	if id.Username == "" || len(id.Roles) == 0 {
		return "", fmt.Errorf("issue token: %w", domain.ErrInvalidInput)
	}

	now := s.now().UTC()
	claims := tokenClaims{
		Roles: id.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies the signature (HMAC comparison is constant time), then the
// expiry, and returns the asserted identity. Errors are one of
// domain.ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
func (s *TokenService) Validate(raw string) (domain.Identity, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Identity{}, classifyTokenError(err)
	}

	if claims.Subject == "" || len(claims.Roles) == 0 {
		return domain.Identity{}, domain.ErrTokenMalformed
	}
	for _, r := range claims.Roles {
		if !r.Valid() {
			return domain.Identity{}, domain.ErrTokenMalformed
		}
	}

	return domain.Identity{Username: claims.Subject, Roles: claims.Roles}, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	default:
		return domain.ErrTokenMalformed
	}
}
