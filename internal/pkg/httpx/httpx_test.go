package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stardrop/internal/pkg/errorx"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fn(c))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestRestAbortSuccess(t *testing.T) {
	rec, envelope := record(t, func(c echo.Context) error {
		return RestAbort(c, map[string]interface{}{"offline": true}, nil)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Message)
}

func TestRestAbortErrorStatuses(t *testing.T) {
	cases := []struct {
		kind errorx.Kind
		want int
	}{
		{errorx.Authn, http.StatusUnauthorized},
		{errorx.Invalid, http.StatusBadRequest},
		{errorx.NotExist, http.StatusNotFound},
		{errorx.RateLimiting, http.StatusTooManyRequests},
		{errorx.Unavailable, http.StatusServiceUnavailable},
		{errorx.Service, http.StatusInternalServerError},
		{errorx.Other, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec, envelope := record(t, func(c echo.Context) error {
			return RestAbort(c, nil, errorx.Wrap(errors.New("boom"), tc.kind))
		})

		assert.Equal(t, tc.want, rec.Code)
		assert.False(t, envelope.Success)
		assert.NotEmpty(t, envelope.Message)
	}
}

func TestAbortHidesInternalDetails(t *testing.T) {
	rec, envelope := record(t, func(c echo.Context) error {
		return Abort(c, errors.New("pq: password authentication failed"), -1)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", envelope.Message)
}

func TestAbortExplicitStatus(t *testing.T) {
	rec, envelope := record(t, func(c echo.Context) error {
		return Abort(c, errors.New("gone"), http.StatusNotFound)
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "gone", envelope.Message)
}
