package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

const maxUploadBytes = 10 << 20

// FileHandler uploads and serves hobby images.
type FileHandler struct {
	store ports.FileStore
}

func NewFileHandler(store ports.FileStore) *FileHandler {
	return &FileHandler{store: store}
}

// Upload handles POST /api/files.
//
// @Summary      Upload an image
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image"
// @Success      201   {object}  fileResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required").SetInternal(err)
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	stored, err := h.store.Store(c.Request().Context(), fh.Filename, contentTypeFor(fh.Filename), src, fh.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fileResponse{Key: stored.Key, URL: stored.URL})
}

// Download handles GET /api/files/:name.
//
// @Summary      Download an image
// @Tags         files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        name  path  string  true  "Object key"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /api/files/{name} [get]
func (h *FileHandler) Download(c echo.Context) error {
	name := c.Param("name")
	if name == "" || strings.ContainsAny(name, "/\\") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid file name")
	}

	rc, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		return err
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Stream(http.StatusOK, contentTypeFor(name), rc)
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return echo.MIMEOctetStream
	}
}
