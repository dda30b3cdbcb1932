package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// signupPath is where denied requests are sent, with no error detail.
const signupPath = "/signup"

// RequireUser admits only requests with a resolved identity.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusFound, signupPath)
		}
		return next(c)
	}
}

// RequireAdmin admits only requests whose resolved identity is an
// administrator. Anonymous and ordinary users get the same silent redirect.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.Admin {
			return c.Redirect(http.StatusFound, signupPath)
		}
		return next(c)
	}
}
