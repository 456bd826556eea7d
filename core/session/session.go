// Package session resolves which cart a request belongs to.
package session

import (
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	HeaderName = "X-Cart-Session"
	CookieName = "cart_session"
	contextKey = "cart_session"
	cookieTTL  = 30 * 24 * time.Hour
)

// ids must be safe as storage key segments.
var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Middleware reads the session id from the X-Cart-Session header, then the cart_session cookie.
// A missing or malformed id is replaced with a new one. The id is echoed back in the header
// and the cookie so clients can keep using it.
func Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			id := c.Request().Header.Get(HeaderName)
			if id == "" {
				if ck, err := c.Cookie(CookieName); err == nil {
					id = ck.Value
				}
			}
			if !validID.MatchString(id) {
				id = uuid.NewString()
			}
			c.Set(contextKey, id)
			c.Response().Header().Set(HeaderName, id)
			c.SetCookie(&http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cookieTTL),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return next(c)
		}
	}
}

// ID returns the session id set by Middleware, or "" outside it.
func ID(c echo.Context) string {
	id, _ := c.Get(contextKey).(string)
	return id
}
