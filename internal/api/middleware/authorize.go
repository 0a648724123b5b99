package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/api/metrics"
	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// Authorizer decides whether an identity may call a route. nil means the
// caller is anonymous.
type Authorizer interface {
	Authorize(id *domain.Identity, method, path string) error
}

// Authorize applies the route rules to the identity left by Authenticate.
func Authorize(policy Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var idp *domain.Identity
			if id, ok := CurrentIdentity(c); ok {
				idp = &id
			}

			req := c.Request()
			if err := policy.Authorize(idp, req.Method, req.URL.Path); err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AuthorizationDenialsTotal.WithLabelValues("role").Inc()
				}
				return err
			}
			return next(c)
		}
	}
}

// OwnerParam requires the query parameter param to name the caller. It
// guards endpoints that act on a per-user collection chosen by the client.
func OwnerParam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if owner := c.QueryParam(param); owner == "" || owner != id.Username {
				metrics.AuthorizationDenialsTotal.WithLabelValues("owner").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
