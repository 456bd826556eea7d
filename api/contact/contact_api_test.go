package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront.GO/api"
	"storefront.GO/service/contact"
)

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterContactRoutes(e.Group("/api"), &api.Deps{
		Contact: contact.NewService(0, func() string { return "msg-1" }, nil),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestContact(t *testing.T) {
	rec := post(t, `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","subject":"Hi","message":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var r contact.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "msg-1", r.ID)
	assert.Equal(t, contact.SuccessMessage, r.Message)
}

func TestContactMissingField(t *testing.T) {
	rec := post(t, `{"firstName":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lastName")
}
