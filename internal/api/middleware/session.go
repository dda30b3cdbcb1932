package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// CookieName is the browser cookie carrying the opaque session token.
const CookieName = "supernova_session"

const (
	ctxKeyUser    = "user"
	ctxKeyToken   = "session_token"
	ctxKeyFlashes = "flashes"
)

// Session resolves the session on every request before any route logic runs:
//   - no cookie or unknown token → the request continues unauthenticated
//   - a stored user id is resolved against the user repository; a lookup miss
//     is also non-fatal (no identity attached)
//   - pending flash messages are popped into the request context and cleared
//     from the session, so each surfaces exactly once
func Session(store ports.SessionStore, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			token := cookie.Value

			ctx := c.Request().Context()
			data, err := store.Get(ctx, token)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) {
					log.Warn().Err(err).Msg("session load failed")
				}
				return next(c)
			}
			c.Set(ctxKeyToken, token)

			if data.UserID != "" {
				user, err := users.FindByID(ctx, data.UserID)
				switch {
				case err == nil:
					c.Set(ctxKeyUser, user)
				case errors.Is(err, domain.ErrUserNotFound):
					// Stale identity; the request proceeds unauthenticated.
				default:
					log.Warn().Err(err).Str("user_id", data.UserID).Msg("session identity lookup failed")
				}
			}

			if len(data.Flash) > 0 {
				c.Set(ctxKeyFlashes, data.Flash)
				data.Flash = nil
				if err := store.Save(ctx, token, *data); err != nil {
					log.Warn().Err(err).Msg("failed to clear flashes")
				}
			}

			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by the Session middleware, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(ctxKeyUser).(*domain.User)
	return user
}

// SessionToken returns the live session token for this request, if any.
func SessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(ctxKeyToken).(string)
	return token, ok && token != ""
}

// Flashes returns the one-shot messages popped for this request, keyed by
// category. The map is nil when no flashes were pending.
func Flashes(c echo.Context) map[string][]string {
	flashes, _ := c.Get(ctxKeyFlashes).(map[string][]string)
	return flashes
}

// SetSessionCookie attaches the session cookie to the response.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
