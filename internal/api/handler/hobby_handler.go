package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

// HobbyHandler serves hobbies and the per-user saved list. Role rules run
// before these handlers; ownership is enforced by the service.
type HobbyHandler struct {
	service ports.HobbyService
}

func NewHobbyHandler(service ports.HobbyService) *HobbyHandler {
	return &HobbyHandler{service: service}
}

func (r hobbyRequest) toInput() ports.HobbyInput {
	return ports.HobbyInput{
		ID:          r.ID,
		Name:        r.Name,
		Slogan:      r.Slogan,
		Intro:       r.Intro,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		Creator:     r.Creator,
		ImageKey:    r.ImageKey,
	}
}

// Create handles POST /hobbies.
//
// @Summary      Create a hobby
// @Tags         hobbies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hobbyRequest  true  "Hobby; creator must be the caller"
// @Success      201   {object}  domain.Hobby
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /hobbies [post]
func (h *HobbyHandler) Create(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	var req hobbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hobby, err := h.service.Create(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hobby)
}

// Update handles PUT /hobbies.
//
// @Summary      Update a hobby
// @Tags         hobbies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hobbyRequest  true  "Hobby with id"
// @Success      200   {object}  domain.Hobby
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /hobbies [put]
func (h *HobbyHandler) Update(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	var req hobbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	hobby, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hobby)
}

// Delete handles DELETE /hobbies/:id.
//
// @Summary      Delete a hobby
// @Tags         hobbies
// @Security     BearerAuth
// @Param        id   path  string  true  "Hobby ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hobbies/{id} [delete]
func (h *HobbyHandler) Delete(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /hobbies/:id.
//
// @Summary      Get a hobby
// @Tags         hobbies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hobby ID"
// @Success      200  {object}  domain.Hobby
// @Failure      404  {object}  errorResponse
// @Router       /hobbies/{id} [get]
func (h *HobbyHandler) Get(c echo.Context) error {
	if _, err := actor(c); err != nil {
		return err
	}
	hobby, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hobby)
}

// Save handles POST /hobbies/save?id=&username=.
//
// @Summary      Save a hobby to the caller's list
// @Tags         favorites
// @Security     BearerAuth
// @Param        id        query  string  true  "Hobby ID"
// @Param        username  query  string  true  "Caller's username"
// @Success      201
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /hobbies/save [post]
func (h *HobbyHandler) Save(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.service.Save(c.Request().Context(), id, c.QueryParam("username"), c.QueryParam("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Remove handles DELETE /hobbies/remove?id=&username=.
//
// @Summary      Remove a hobby from the caller's list
// @Tags         favorites
// @Security     BearerAuth
// @Param        id        query  string  true  "Hobby ID"
// @Param        username  query  string  true  "Caller's username"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hobbies/remove [delete]
func (h *HobbyHandler) Remove(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), id, c.QueryParam("username"), c.QueryParam("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Saved handles GET /hobbies/saved?username=.
//
// @Summary      List the caller's saved hobbies
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  true  "Caller's username"
// @Success      200       {array}   domain.Hobby
// @Failure      403       {object}  errorResponse
// @Router       /hobbies/saved [get]
func (h *HobbyHandler) Saved(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.service.Saved(c.Request().Context(), id, c.QueryParam("username"))
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Hobby{}
	}
	return c.JSON(http.StatusOK, list)
}

// IsSaved handles GET /hobbies/is-saved?id=&username=.
//
// @Summary      Check whether a hobby is on the caller's list
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id        query     string  true  "Hobby ID"
// @Param        username  query     string  true  "Caller's username"
// @Success      200       {object}  isSavedResponse
// @Failure      403       {object}  errorResponse
// @Router       /hobbies/is-saved [get]
func (h *HobbyHandler) IsSaved(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	saved, err := h.service.IsSaved(c.Request().Context(), id, c.QueryParam("username"), c.QueryParam("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, isSavedResponse{Saved: saved})
}
