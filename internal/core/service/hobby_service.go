package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

// HobbyService enforces resource ownership for hobby and favorites
// operations. Role checks have already happened in the router pipeline.
type HobbyService struct {
	repo  ports.HobbyRepository
	files ports.FileStore
	log   zerolog.Logger
}

// NewHobbyService returns a HobbyService. files may be nil, in which case
// images of deleted hobbies are left in place.
func NewHobbyService(repo ports.HobbyRepository, files ports.FileStore, log zerolog.Logger) *HobbyService {
	return &HobbyService{repo: repo, files: files, log: log}
}

// Create stores a hobby. The declared creator must be the caller.
func (s *HobbyService) Create(ctx context.Context, actor domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
	if in.Creator != actor.Username {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	h := &domain.Hobby{
		Name:        in.Name,
		Slogan:      in.Slogan,
		Intro:       in.Intro,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Creator:     actor.Username,
		ImageKey:    in.ImageKey,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("hobby_id", created.ID).Str("creator", created.Creator).Msg("hobby created")
	return created, nil
}

// Update replaces the editable fields of a hobby the caller authored.
func (s *HobbyService) Update(ctx context.Context, actor domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
	existing, err := s.owned(ctx, actor, in.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	existing.Name = in.Name
	existing.Slogan = in.Slogan
	existing.Intro = in.Intro
	existing.Description = in.Description
	existing.Category = in.Category
	existing.Location = in.Location
	if in.ImageKey != "" {
		existing.ImageKey = in.ImageKey
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a hobby the caller authored, along with its image.
func (s *HobbyService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	existing, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.files != nil && existing.ImageKey != "" {
		if err := s.files.Delete(ctx, existing.ImageKey); err != nil {
			s.log.Warn().Err(err).Str("hobby_id", id).Msg("failed to delete hobby image")
		}
	}
	s.log.Info().Str("hobby_id", id).Str("creator", actor.Username).Msg("hobby deleted")
	return nil
}

func (s *HobbyService) Get(ctx context.Context, id string) (*domain.Hobby, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HobbyService) Save(ctx context.Context, actor domain.Identity, username, hobbyID string) error {
	if err := requireSelf(actor, username); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, hobbyID); err != nil {
		return err
	}
	return s.repo.AddFavorite(ctx, username, hobbyID)
}

func (s *HobbyService) Remove(ctx context.Context, actor domain.Identity, username, hobbyID string) error {
	if err := requireSelf(actor, username); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, hobbyID); err != nil {
		return err
	}
	return s.repo.RemoveFavorite(ctx, username, hobbyID)
}

func (s *HobbyService) IsSaved(ctx context.Context, actor domain.Identity, username, hobbyID string) (bool, error) {
	if err := requireSelf(actor, username); err != nil {
		return false, err
	}
	return s.repo.IsFavorite(ctx, username, hobbyID)
}

func (s *HobbyService) Saved(ctx context.Context, actor domain.Identity, username string) ([]*domain.Hobby, error) {
	if err := requireSelf(actor, username); err != nil {
		return nil, err
	}
	return s.repo.ListFavorites(ctx, username)
}

// owned loads a hobby and checks the caller authored it. A missing hobby is
// reported as not found before any ownership comparison.
func (s *HobbyService) owned(ctx context.Context, actor domain.Identity, id string) (*domain.Hobby, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.OwnedBy(actor.Username) {
		return nil, domain.ErrForbidden
	}
	return h, nil
}

func requireSelf(actor domain.Identity, username string) error {
	if username == "" || username != actor.Username {
		return domain.ErrForbidden
	}
	return nil
}
