// Package httpx renders the JSON envelope the campaign frontend expects:
// {"success": true, "data": ...} or {"success": false, "message": ...}.
package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stardrop/internal/pkg/errorx"
)

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func statusOf(err error) int {
	switch errorx.KindOf(err) {
	case errorx.Authn:
		return http.StatusUnauthorized
	case errorx.Invalid:
		return http.StatusBadRequest
	case errorx.NotExist:
		return http.StatusNotFound
	case errorx.RateLimiting:
		return http.StatusTooManyRequests
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RestAbort writes the envelope for data or err. Pass exactly one of them;
// err wins when both are set.
func RestAbort(c echo.Context, data interface{}, err error) error {
	if err != nil {
		return Abort(c, err, -1)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Abort writes an error envelope. A negative status derives the code from
// the error kind.
func Abort(c echo.Context, err error, status int) error {
	if status < 0 {
		status = statusOf(err)
	}

	message := "internal server error"
	if err != nil && status != http.StatusInternalServerError {
		message = err.Error()
	}

	return c.JSON(status, Envelope{Success: false, Message: message})
}
