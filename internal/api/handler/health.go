package handler

import (
	"context"
	"time"

	"stardrop/internal/pkg/httpx"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type groupHealth struct {
	container *do.Injector
}

// Health always answers 200; the database state is advisory so the frontend
// can switch to offline mode without treating the backend as down.
func (gr *groupHealth) Health(c echo.Context) error {
	database := "offline"

	db, err := do.Invoke[*bun.DB](gr.container)
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err == nil {
			database = "connected"
		}
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"status":   "ok",
		"database": database,
	}, nil)
}
