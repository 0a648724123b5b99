package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

const fallbackUsername = "user"

// FederatedLoginService reconciles identity-provider logins with local
// accounts, provisioning an account on first login.
type FederatedLoginService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewFederatedLoginService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *FederatedLoginService {
	return &FederatedLoginService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Reconcile finds the account for profile.Email, creating it when missing,
// and issues a token for it. Repeated calls for one email yield one account.
func (s *FederatedLoginService) Reconcile(ctx context.Context, profile domain.ExternalProfile) (*ports.FederatedLogin, error) {
	email := strings.TrimSpace(profile.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: provider returned no email", domain.ErrProvisioning)
	}

	provisioned := false
	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		user, provisioned, err = s.provision(ctx, email, profile.Name)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("find account by email: %w", err)
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &ports.FederatedLogin{Token: token, User: user, Provisioned: provisioned}, nil
}

// provision walks base, base1, base2, ... until a free username is found.
// A uniqueness conflict on save means either the username was taken in the
// meantime or another callback already created the account for this email;
// the latter is resolved by returning that account.
func (s *FederatedLoginService) provision(ctx context.Context, email, name string) (*domain.User, bool, error) {
	hash, err := s.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrProvisioning, err)
	}

	base := usernameBase(email)
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		candidate := base
		if n > 0 {
			candidate = base + strconv.Itoa(n)
		}

		_, err := s.repo.FindByUsername(ctx, candidate)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, fmt.Errorf("find account by username: %w", err)
		}

		now := time.Now().UTC()
		created, err := s.repo.Save(ctx, &domain.User{
			Username:     candidate,
			Email:        email,
			DisplayName:  name,
			PasswordHash: hash,
			Roles:        []domain.Role{domain.RoleUser},
			Kind:         domain.KindUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err == nil {
			s.log.Info().Str("username", created.Username).Msg("federated account provisioned")
			return created, true, nil
		}
		if !errors.Is(err, domain.ErrUserExists) {
			return nil, false, fmt.Errorf("save account: %w", err)
		}

		winner, ferr := s.repo.FindByEmail(ctx, email)
		if ferr == nil {
			s.log.Debug().Str("username", winner.Username).Msg("provisioning conflict, using existing account")
			return winner, false, nil
		}
		if !errors.Is(ferr, domain.ErrUserNotFound) {
			return nil, false, fmt.Errorf("find account by email: %w", ferr)
		}
	}
}

func usernameBase(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if local == "" {
		return fallbackUsername
	}
	return local
}
