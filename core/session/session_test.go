package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var got string
	e.Use(Middleware(nil))
	e.GET("/", func(c echo.Context) error {
		got = ID(c)
		return c.NoContent(http.StatusNoContent)
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, got
}

func TestSessionFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, "abc-123")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-id"})

	rec, id := serve(t, req)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderName))
}

func TestSessionFromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-id"})

	_, id := serve(t, req)
	assert.Equal(t, "cookie-id", id)
}

func TestSessionGenerated(t *testing.T) {
	for _, bad := range []string{"", "has:colon", "spaces are bad"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if bad != "" {
			req.Header.Set(HeaderName, bad)
		}
		rec, id := serve(t, req)
		_, err := uuid.Parse(id)
		require.NoError(t, err, bad)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, id, cookies[0].Value)
	}
}

func TestSessionSkipper(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(func(echo.Context) bool { return true }))
	var got string
	e.GET("/", func(c echo.Context) error {
		got = ID(c)
		return c.NoContent(http.StatusNoContent)
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "", got)
	assert.Empty(t, rec.Header().Get(HeaderName))
}
