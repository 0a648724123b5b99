package middleware

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// CanonicalPath rejects request paths whose routed form differs from the
// form the access policy matches: encoded slashes, dot segments and repeated
// slashes. Register it with e.Pre so it runs before routing.
func CanonicalPath() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := c.Request().URL
			if !isCanonical(u.Path, u.RawPath) {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid path")
			}
			return next(c)
		}
	}
}

func isCanonical(p, raw string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	want := p
	if len(p) > 1 {
		want = strings.TrimSuffix(p, "/")
	}
	if path.Clean(p) != want {
		return false
	}
	if raw == "" {
		return true
	}
	for _, seg := range strings.Split(raw, "/") {
		dec, err := url.PathUnescape(seg)
		if err != nil || strings.Contains(dec, "/") {
			return false
		}
	}
	return true
}
