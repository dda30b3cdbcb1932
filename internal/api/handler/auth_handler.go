package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/api/metrics"
	"github.com/supernova-club/community-api/internal/api/middleware"
	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// AuthHandler serves the credential endpoints: login, registration and logout.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log}
}

// Login handles POST /login. Failed attempts leave a flash message in the
// session and send the visitor back to the home page.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form payload")
	}

	user, err := h.auth.SignIn(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return h.flashAndRedirect(c, domain.FlashMessage, "User Not found.", "/")
	case errors.Is(err, domain.ErrInvalidPassword):
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return h.flashAndRedirect(c, domain.FlashMessage, "Invalid Password", "/")
	case err != nil:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", user.Username).Msg("user logged in")
	return h.establishSession(c, user)
}

// Register handles POST /local-reg.
func (h *AuthHandler) Register(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return h.flashAndRedirect(c, domain.FlashMessage, err.Error(), "/signup")
	}

	user, err := h.auth.SignUp(c.Request().Context(), ports.SignUpInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		metrics.SignupsTotal.WithLabelValues("exists").Inc()
		return h.flashAndRedirect(c, domain.FlashMessage, "User Already Exists", "/signup")
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return h.flashAndRedirect(c, domain.FlashMessage, err.Error(), "/signup")
	case err != nil:
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", user.Username).Msg("user registered")
	return h.establishSession(c, user)
}

// Logout handles GET /logout. The farewell notice has to be stored before the
// redirect is written, otherwise the follow-up request never sees it.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	token, ok := middleware.SessionToken(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	data, err := h.sessions.Get(ctx, token)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	data.UserID = ""
	if user != nil {
		data.AddFlash(domain.FlashNotice, "You have successfully been logged out "+user.Username+"!")
	}
	if err := h.sessions.Save(ctx, token, *data); err != nil {
		h.log.Warn().Err(err).Msg("saving logout notice")
	}

	metrics.LogoutsTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// establishSession replaces whatever session the request carried with a fresh
// authenticated one and redirects home.
func (h *AuthHandler) establishSession(c echo.Context, user *domain.User) error {
	ctx := c.Request().Context()

	if old, ok := middleware.SessionToken(c); ok {
		if err := h.sessions.Delete(ctx, old); err != nil {
			h.log.Warn().Err(err).Msg("retiring previous session")
		}
	}

	token, err := h.sessions.Create(ctx, ports.SessionData{UserID: user.ID})
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/")
}

// flashAndRedirect stashes a flash message in the visitor's session, creating
// an anonymous session when the request carried none, and then redirects.
func (h *AuthHandler) flashAndRedirect(c echo.Context, category, message, target string) error {
	ctx := c.Request().Context()

	if token, ok := middleware.SessionToken(c); ok {
		if data, err := h.sessions.Get(ctx, token); err == nil {
			data.AddFlash(category, message)
			if err := h.sessions.Save(ctx, token, *data); err == nil {
				return c.Redirect(http.StatusFound, target)
			}
			h.log.Warn().Str("category", category).Msg("saving flash to existing session failed")
		}
	}

	data := ports.SessionData{}
	data.AddFlash(category, message)
	token, err := h.sessions.Create(ctx, data)
	if err != nil {
		h.log.Warn().Err(err).Msg("creating flash session")
		return c.Redirect(http.StatusFound, target)
	}
	middleware.SetSessionCookie(c, token)
	return c.Redirect(http.StatusFound, target)
}
