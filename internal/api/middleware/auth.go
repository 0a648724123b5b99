package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/api/metrics"
	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

// PublicMatcher reports whether a path is served without an identity.
type PublicMatcher interface {
	IsPublic(path string) bool
}

// Authenticate resolves the bearer token of every non-public request into a
// domain.Identity carried by the request context. Public paths pass through
// anonymously. Every token problem yields the same domain.ErrUnauthenticated
// so callers cannot tell a forged token from an expired one.
func Authenticate(tokens ports.TokenValidator, public PublicMatcher, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if public.IsPublic(req.URL.Path) {
				return next(c)
			}

			raw, ok := bearerToken(req.Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			id, err := tokens.Validate(raw)
			if err != nil {
				result := tokenResult(err)
				metrics.TokenValidationsTotal.WithLabelValues(result).Inc()
				log.Debug().
					Str("result", result).
					Str("path", req.URL.Path).
					Msg("bearer token rejected")
				return domain.ErrUnauthenticated
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.SetRequest(req.WithContext(domain.WithIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func tokenResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}

// CurrentIdentity returns the identity attached by Authenticate.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	return domain.IdentityFromContext(c.Request().Context())
}
