package handler

import (
	"stardrop/internal/models"
	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
	"stardrop/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupReferral struct {
	container *do.Injector
}

func (gr *groupReferral) SaveReferral(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.ReferralRequest
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceReferral, err := do.Invoke[*services.ServiceReferral](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	referral, err := serviceReferral.SaveReferral(ctx, &payload)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, referral, nil)
}

func (gr *groupReferral) GetReferrals(c echo.Context) error {
	ctx := c.Request().Context()

	serviceReferral, err := do.Invoke[*services.ServiceReferral](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	summary, err := serviceReferral.GetReferrals(ctx, c.Param("wallet"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, summary, nil)
}
