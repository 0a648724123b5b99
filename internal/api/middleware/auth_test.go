package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/policy"
	"github.com/hobbie/hobbie-backend/internal/core/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTokens() *service.TokenService {
	return service.NewTokenService(testSecret, time.Hour)
}

func runAuth(t *testing.T, path, header string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Authenticate(newTokens(), policy.Default(), zerolog.Nop())(next)(c)
	return rec, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, err := newTokens().Issue(domain.Identity{Username: "alice", Roles: []domain.Role{domain.RoleBusinessUser}})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec, err := runAuth(t, "/user/me", "Bearer "+token, func(c echo.Context) error {
		called = true
		id, ok := CurrentIdentity(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if id.Username != "alice" || !id.HasAnyRole(domain.RoleBusinessUser) {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected next to run, code %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"USER"},
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	forged, _ := service.NewTokenService("another-secret-another-secret-xx", time.Hour).
		Issue(domain.Identity{Username: "alice", Roles: []domain.Role{domain.RoleAdmin}})

	cases := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Basic YWxpY2U6cHc=",
		"empty bearer":    "Bearer ",
		"malformed token": "Bearer not.a.jwt",
		"expired token":   "Bearer " + stale,
		"foreign key":     "Bearer " + forged,
	}
	for name, header := range cases {
		_, err := runAuth(t, "/user/me", header, func(c echo.Context) error {
			t.Fatalf("%s: should not reach next handler", name)
			return nil
		})
		if err != domain.ErrUnauthenticated {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestAuthenticate_PublicPathSkipsToken(t *testing.T) {
	called := false
	_, err := runAuth(t, "/health/ready", "Bearer garbage", func(c echo.Context) error {
		called = true
		if _, ok := CurrentIdentity(c); ok {
			t.Fatalf("public request should be anonymous")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected public path to pass, err=%v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		token string
		ok    bool
	}{
		"Bearer abc":   {"abc", true},
		"bearer abc":   {"abc", true},
		"Bearer  abc ": {"abc", true},
		"Bearer":       {"", false},
		"Token abc":    {"", false},
	}
	for in, want := range cases {
		got, ok := bearerToken(in)
		if got != want.token || ok != want.ok {
			t.Fatalf("bearerToken(%q) = %q, %v", in, got, ok)
		}
	}
}

func TestTokenResult(t *testing.T) {
	if tokenResult(domain.ErrTokenExpired) != "expired" ||
		tokenResult(domain.ErrTokenSignatureInvalid) != "signature_invalid" ||
		tokenResult(errors.New("other")) != "malformed" {
		t.Fatalf("unexpected token result mapping")
	}
}
