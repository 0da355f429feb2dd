package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	secret string
}

func (v *fakeVerifier) ValidateKey(key string) error {
	if key != v.secret {
		return errors.New("invalid admin key")
	}
	return nil
}

func callAdminRoute(t *testing.T, target string, header string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/api/admin/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}, AuthnAdmin(&fakeVerifier{secret: "s3cret"}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("admin-key", header)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthnAdminMissingKey(t *testing.T) {
	rec := callAdminRoute(t, "/api/admin/stats", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthnAdminWrongKey(t *testing.T) {
	rec := callAdminRoute(t, "/api/admin/stats", "nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestAuthnAdminHeaderKey(t *testing.T) {
	rec := callAdminRoute(t, "/api/admin/stats", "s3cret")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthnAdminQueryParamFallback(t *testing.T) {
	rec := callAdminRoute(t, "/api/admin/stats?admin_key=s3cret", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callAdminRoute(t, "/api/admin/stats?admin_key=wrong", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
