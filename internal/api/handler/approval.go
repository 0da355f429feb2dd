package handler

import (
	"stardrop/internal/models"
	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
	"stardrop/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupApproval struct {
	container *do.Injector
}

func (gr *groupApproval) SaveApproval(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.ApprovalRequest
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceApproval, err := do.Invoke[*services.ServiceApproval](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	user, offline, err := serviceApproval.SaveApproval(ctx, &payload)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	if offline {
		return httpx.RestAbort(c, map[string]interface{}{
			"offline": true,
		}, nil)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"offline": false,
		"user":    user,
	}, nil)
}
