package handler

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/hobbie/hobbie-backend/internal/api/metrics"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

const (
	stateCookieName = "oauth_state"
	callbackPath    = "/login/oauth2"
)

// OAuthHandler drives the browser side of federated login. Both endpoints
// answer with redirects; failures never expose a reason to the browser.
type OAuthHandler struct {
	provider ports.IdentityProvider
	states   ports.StateStore
	logins   ports.FederatedLoginService
	frontend string
	stateTTL time.Duration
	log      zerolog.Logger
}

func NewOAuthHandler(
	provider ports.IdentityProvider,
	states ports.StateStore,
	logins ports.FederatedLoginService,
	frontendBaseURL string,
	stateTTL time.Duration,
	log zerolog.Logger,
) *OAuthHandler {
	return &OAuthHandler{
		provider: provider,
		states:   states,
		logins:   logins,
		frontend: strings.TrimRight(frontendBaseURL, "/"),
		stateTTL: stateTTL,
		log:      log,
	}
}

// Authorize starts a federated login.
//
// @Summary      Start federated login
// @Tags         oauth2
// @Success      302
// @Router       /oauth2/authorization [get]
func (h *OAuthHandler) Authorize(c echo.Context) error {
	state := oauth2.GenerateVerifier()
	if err := h.states.Put(c.Request().Context(), state, h.stateTTL); err != nil {
		return err
	}
	c.SetCookie(h.stateCookie(c, state, int(h.stateTTL/time.Second)))
	return c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback completes a federated login and hands the token to the frontend.
//
// @Summary      Federated login callback
// @Tags         oauth2
// @Param        state  query  string  true  "State issued by /oauth2/authorization"
// @Param        code   query  string  true  "Authorization code"
// @Success      302
// @Router       /login/oauth2/code [get]
func (h *OAuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	c.SetCookie(h.stateCookie(c, "", -1))

	if reason := c.QueryParam("error"); reason != "" {
		h.log.Info().Str("reason", reason).Msg("identity provider denied login")
		return h.fail(c, "failed")
	}

	state := c.QueryParam("state")
	cookie, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		return h.fail(c, "invalid_state")
	}

	valid, err := h.states.Consume(ctx, state)
	if err != nil {
		h.log.Error().Err(err).Msg("oauth state lookup failed")
		return h.fail(c, "failed")
	}
	if !valid {
		return h.fail(c, "invalid_state")
	}

	profile, err := h.provider.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		h.log.Warn().Err(err).Msg("identity provider exchange failed")
		return h.fail(c, "failed")
	}

	res, err := h.logins.Reconcile(ctx, *profile)
	if err != nil {
		h.log.Error().Err(err).Msg("federated login reconciliation failed")
		return h.fail(c, "failed")
	}

	outcome := "existing"
	if res.Provisioned {
		outcome = "provisioned"
	}
	metrics.FederatedLoginsTotal.WithLabelValues(outcome).Inc()

	q := url.Values{}
	q.Set("token", res.Token)
	q.Set("username", res.User.Username)
	q.Set("role", string(res.User.PrimaryRole()))
	return c.Redirect(http.StatusFound, h.frontend+"/oauth2/redirect?"+q.Encode())
}

// stateCookie binds a login state to the browser that started it. maxAge < 0
// clears it.
func (h *OAuthHandler) stateCookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     callbackPath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *OAuthHandler) fail(c echo.Context, outcome string) error {
	metrics.FederatedLoginsTotal.WithLabelValues(outcome).Inc()
	return c.Redirect(http.StatusFound, h.frontend+"/login?error=true")
}
