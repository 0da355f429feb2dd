package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
)

// AuthnAdmin gates a route group behind the shared admin secret, taken from
// the admin-key header or the admin_key query parameter.
func AuthnAdmin(verifier interface {
	ValidateKey(key string) error
},
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("admin-key")
			if key == "" {
				key = c.QueryParam("admin_key")
			}

			if key == "" {
				return httpx.Abort(c, errorx.Wrap(errors.New("unauthorized"), errorx.Authn), -1)
			}

			if err := verifier.ValidateKey(key); err != nil {
				// don't leak whether the key was close
				return httpx.Abort(c, errorx.Wrap(errors.New("unauthorized"), errorx.Authn), -1)
			}

			return next(c)
		}
	}
}
