package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// stubAuthRepo enforces the same uniqueness rules as the Mongo store.
type stubAuthRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // by username
	nextID int
	saves  int

	// beforeSave runs without the lock held, letting tests widen race windows.
	beforeSave func()
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.beforeSave != nil {
		r.beforeSave()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, u := range r.users {
		if u.ID == user.ID && user.ID != "" {
			continue
		}
		if name == user.Username || (user.Email != "" && u.Email == user.Email) {
			return nil, domain.ErrUserExists
		}
	}

	stored := cloneUser(user)
	if stored.ID == "" {
		r.nextID++
		stored.ID = strconv.Itoa(r.nextID)
	}
	r.users[stored.Username] = cloneUser(stored)
	r.saves++
	return cloneUser(stored), nil
}

func (r *stubAuthRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// plainHasher keeps tests fast; bcrypt itself is covered in password_test.go.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "plain:" + p, nil }

func (plainHasher) Verify(p, digest string) (bool, error) {
	if len(digest) < 6 || digest[:6] != "plain:" {
		return false, domain.ErrHashing
	}
	return digest == "plain:"+p, nil
}
