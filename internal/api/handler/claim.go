package handler

import (
	"stardrop/internal/models"
	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
	"stardrop/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupClaim struct {
	container *do.Injector
}

func (gr *groupClaim) SaveClaim(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.ClaimRequest
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	claim, alreadyClaimed, err := serviceClaim.SaveClaim(ctx, &payload)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"alreadyClaimed": alreadyClaimed,
		"claim":          claim,
	}, nil)
}

func (gr *groupClaim) ClaimStatus(c echo.Context) error {
	ctx := c.Request().Context()

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	status, err := serviceClaim.GetClaimStatus(ctx, c.Param("wallet"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, status, nil)
}
