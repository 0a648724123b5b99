package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hobbie/hobbie-backend/docs"
	"github.com/hobbie/hobbie-backend/internal/api/handler"
	"github.com/hobbie/hobbie-backend/internal/api/middleware"
	"github.com/hobbie/hobbie-backend/internal/core/policy"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

// Deps carries everything the router wires into handlers. OAuth and Files
// are optional; their routes are registered only when set.
type Deps struct {
	Auth     ports.AuthService
	Tokens   ports.TokenValidator
	Policy   *policy.Policy
	Hobbies  ports.HobbyService
	Health   map[string]handler.Pinger
	OAuth    *handler.OAuthHandler
	Files    ports.FileStore
	Origins  []string
	Log      zerolog.Logger

	// Registerer and Gatherer default to the prometheus globals, where the
	// metrics package registers.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// Routing and the access policy must agree on the path.
	e.Pre(middleware.CanonicalPath())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "hobbie",
		Registerer: d.Registerer,
	}))

	// --- Security pipeline: identity first, then route rules ---
	e.Use(middleware.Authenticate(d.Tokens, d.Policy, d.Log))
	e.Use(middleware.Authorize(d.Policy))

	// --- Operational routes (public) ---
	health := handler.NewHealthHandler(d.Health)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Accounts ---
	auth := handler.NewAuthHandler(d.Auth)
	e.POST("/signup", auth.Signup)
	e.POST("/register", auth.Register)
	e.POST("/authenticate", auth.Authenticate)

	if d.OAuth != nil {
		e.GET("/oauth2/authorization", d.OAuth.Authorize)
		e.GET("/login/oauth2/code", d.OAuth.Callback)
	}

	e.GET("/user/me", handler.NewUserHandler().Me)

	// --- Hobbies ---
	hobbies := handler.NewHobbyHandler(d.Hobbies)
	owner := middleware.OwnerParam("username")
	e.POST("/hobbies", hobbies.Create)
	e.PUT("/hobbies", hobbies.Update)
	e.POST("/hobbies/save", hobbies.Save, owner)
	e.DELETE("/hobbies/remove", hobbies.Remove, owner)
	e.GET("/hobbies/saved", hobbies.Saved, owner)
	e.GET("/hobbies/is-saved", hobbies.IsSaved, owner)
	e.GET("/hobbies/:id", hobbies.Get)
	e.DELETE("/hobbies/:id", hobbies.Delete)

	// --- Images ---
	if d.Files != nil {
		files := handler.NewFileHandler(d.Files)
		e.POST("/api/files", files.Upload)
		e.GET("/api/files/:name", files.Download)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
