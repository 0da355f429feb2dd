package handler

import (
	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
	"stardrop/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupSettings struct {
	container *do.Injector
}

func (gr *groupSettings) GetApprovalWallet(c echo.Context) error {
	ctx := c.Request().Context()

	serviceSettings, err := do.Invoke[*services.ServiceSettings](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	setting, err := serviceSettings.GetApprovalWallet(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"wallet":     setting.Value,
		"updated_at": setting.UpdatedAt,
	}, nil)
}

func (gr *groupSettings) UpdateApprovalWallet(c echo.Context) error {
	ctx := c.Request().Context()

	var payload struct {
		Wallet string `json:"wallet"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceSettings, err := do.Invoke[*services.ServiceSettings](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	setting, err := serviceSettings.UpdateApprovalWallet(ctx, payload.Wallet)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"wallet":     setting.Value,
		"updated_at": setting.UpdatedAt,
	}, nil)
}
