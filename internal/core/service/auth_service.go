package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

// AuthService implements local registration and username/password login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger

	// decoy is verified against when the username is unknown so both
	// failure paths cost one hash comparison.
	decoyOnce sync.Once
	decoy     string
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	// Admin accounts are never self-registered.
	if in.Kind != domain.KindUser && in.Kind != domain.KindBusinessUser {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: hash,
		Roles:        []domain.Role{in.Kind.DefaultRole()},
		Kind:         in.Kind,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("kind", string(created.Kind)).Msg("account registered")
	return created, nil
}

// Login never tells an unknown username apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		_, _ = s.hasher.Verify(password, s.decoyDigest())
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("stored password digest is corrupt")
		return "", nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) decoyDigest() string {
	s.decoyOnce.Do(func() {
		d, err := s.hasher.Hash("decoy-password-never-matches")
		if err == nil {
			s.decoy = d
		}
	})
	return s.decoy
}
