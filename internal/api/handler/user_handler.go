package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the identity behind the bearer token.
//
// @Summary      Current identity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{
		Username:    id.Username,
		Roles:       id.Roles,
		DisplayName: id.DisplayName,
		Email:       id.Email,
	})
}
