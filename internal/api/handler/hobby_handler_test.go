package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

type stubHobbyService struct {
	createFn  func(ctx context.Context, actor domain.Identity, in ports.HobbyInput) (*domain.Hobby, error)
	updateFn  func(ctx context.Context, actor domain.Identity, in ports.HobbyInput) (*domain.Hobby, error)
	deleteFn  func(ctx context.Context, actor domain.Identity, id string) error
	getFn     func(ctx context.Context, id string) (*domain.Hobby, error)
	saveFn    func(ctx context.Context, actor domain.Identity, username, hobbyID string) error
	removeFn  func(ctx context.Context, actor domain.Identity, username, hobbyID string) error
	isSavedFn func(ctx context.Context, actor domain.Identity, username, hobbyID string) (bool, error)
	savedFn   func(ctx context.Context, actor domain.Identity, username string) ([]*domain.Hobby, error)
}

func (s *stubHobbyService) Create(ctx context.Context, a domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
	return s.createFn(ctx, a, in)
}

func (s *stubHobbyService) Update(ctx context.Context, a domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
	return s.updateFn(ctx, a, in)
}

func (s *stubHobbyService) Delete(ctx context.Context, a domain.Identity, id string) error {
	return s.deleteFn(ctx, a, id)
}

func (s *stubHobbyService) Get(ctx context.Context, id string) (*domain.Hobby, error) {
	return s.getFn(ctx, id)
}

func (s *stubHobbyService) Save(ctx context.Context, a domain.Identity, username, hobbyID string) error {
	return s.saveFn(ctx, a, username, hobbyID)
}

func (s *stubHobbyService) Remove(ctx context.Context, a domain.Identity, username, hobbyID string) error {
	return s.removeFn(ctx, a, username, hobbyID)
}

func (s *stubHobbyService) IsSaved(ctx context.Context, a domain.Identity, username, hobbyID string) (bool, error) {
	return s.isSavedFn(ctx, a, username, hobbyID)
}

func (s *stubHobbyService) Saved(ctx context.Context, a domain.Identity, username string) ([]*domain.Hobby, error) {
	return s.savedFn(ctx, a, username)
}

var acme = &domain.Identity{Username: "acme", Roles: []domain.Role{domain.RoleBusinessUser}}

const hobbyBody = `{"name":"Bouldering","category":"SPORT","location":"Plovdiv","creator":"acme"}`

func TestHobbyHandler_Create(t *testing.T) {
	stub := &stubHobbyService{
		createFn: func(ctx context.Context, a domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
			if a.Username != "acme" || in.Creator != "acme" || in.Name != "Bouldering" {
				t.Fatalf("unexpected args: %+v %+v", a, in)
			}
			return &domain.Hobby{ID: "h1", Name: in.Name, Creator: in.Creator}, nil
		},
	}
	h := NewHobbyHandler(stub)
	c, rec := newContext(http.MethodPost, "/hobbies", hobbyBody, acme)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp domain.Hobby
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.ID != "h1" {
		t.Fatalf("unexpected payload %s: %v", rec.Body.String(), err)
	}
}

func TestHobbyHandler_Create_ForbiddenPassesThrough(t *testing.T) {
	stub := &stubHobbyService{
		createFn: func(ctx context.Context, a domain.Identity, in ports.HobbyInput) (*domain.Hobby, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewHobbyHandler(stub)
	c, _ := newContext(http.MethodPost, "/hobbies", hobbyBody, &domain.Identity{Username: "other", Roles: []domain.Role{domain.RoleBusinessUser}})

	if err := h.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestHobbyHandler_Update_RequiresID(t *testing.T) {
	h := NewHobbyHandler(&stubHobbyService{})
	c, _ := newContext(http.MethodPut, "/hobbies", hobbyBody, acme)

	var he *echo.HTTPError
	if err := h.Update(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHobbyHandler_Delete(t *testing.T) {
	stub := &stubHobbyService{
		deleteFn: func(ctx context.Context, a domain.Identity, id string) error {
			if id != "h1" {
				return domain.ErrHobbyNotFound
			}
			return nil
		},
	}
	h := NewHobbyHandler(stub)

	c, rec := newContext(http.MethodDelete, "/hobbies/h1", "", acme)
	c.SetParamNames("id")
	c.SetParamValues("h1")
	if err := h.Delete(c); err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%v)", rec.Code, err)
	}

	c, _ = newContext(http.MethodDelete, "/hobbies/zzz", "", acme)
	c.SetParamNames("id")
	c.SetParamValues("zzz")
	if err := h.Delete(c); !errors.Is(err, domain.ErrHobbyNotFound) {
		t.Fatalf("expected ErrHobbyNotFound, got %v", err)
	}
}

func TestHobbyHandler_Favorites(t *testing.T) {
	carla := &domain.Identity{Username: "carla", Roles: []domain.Role{domain.RoleUser}}
	stub := &stubHobbyService{
		saveFn: func(ctx context.Context, a domain.Identity, username, hobbyID string) error {
			if username != "carla" || hobbyID != "h1" {
				t.Fatalf("unexpected args: %s %s", username, hobbyID)
			}
			return nil
		},
		isSavedFn: func(ctx context.Context, a domain.Identity, username, hobbyID string) (bool, error) {
			return true, nil
		},
		savedFn: func(ctx context.Context, a domain.Identity, username string) ([]*domain.Hobby, error) {
			return nil, nil
		},
	}
	h := NewHobbyHandler(stub)

	c, rec := newContext(http.MethodPost, "/hobbies/save?id=h1&username=carla", "", carla)
	if err := h.Save(c); err != nil || rec.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d (%v)", rec.Code, err)
	}

	c, rec = newContext(http.MethodGet, "/hobbies/is-saved?id=h1&username=carla", "", carla)
	if err := h.IsSaved(c); err != nil {
		t.Fatalf("is-saved: %v", err)
	}
	var saved isSavedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil || !saved.Saved {
		t.Fatalf("unexpected is-saved payload %s", rec.Body.String())
	}

	c, rec = newContext(http.MethodGet, "/hobbies/saved?username=carla", "", carla)
	if err := h.Saved(c); err != nil {
		t.Fatalf("saved: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestHobbyHandler_RequiresIdentity(t *testing.T) {
	h := NewHobbyHandler(&stubHobbyService{})
	c, _ := newContext(http.MethodPost, "/hobbies/save?id=h1&username=carla", "", nil)
	if err := h.Save(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestHobbyHandler_Get_RequiresIdentity(t *testing.T) {
	h := NewHobbyHandler(&stubHobbyService{})
	c, _ := newContext(http.MethodGet, "/hobbies/h1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("h1")
	if err := h.Get(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
