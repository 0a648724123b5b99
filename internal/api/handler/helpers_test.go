package handler

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context; id, when set, is attached the way
// the authentication middleware does it.
func newContext(method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if id != nil {
		req = req.WithContext(domain.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	return newEcho().NewContext(req, rec), rec
}
