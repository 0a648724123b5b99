package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// actor returns the identity the authentication stage attached to the
// request. Handlers behind that stage always find one; its absence means the
// route was mounted outside the pipeline and the request is refused.
func actor(c echo.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok || id.Username == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}
