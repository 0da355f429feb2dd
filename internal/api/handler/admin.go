package handler

import (
	"strconv"
	"time"

	"stardrop/internal/datastore"
	"stardrop/internal/pkg/errorx"
	"stardrop/internal/pkg/httpx"
	"stardrop/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupAdmin struct {
	container *do.Injector
}

func parsePaging(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func (gr *groupAdmin) ListApprovals(c echo.Context) error {
	ctx := c.Request().Context()

	serviceAdmin, err := do.Invoke[*services.ServiceAdmin](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	filter := &datastore.ApprovalFilter{
		Search: c.QueryParam("search"),
		Tier:   c.QueryParam("tier"),
	}

	page, limit := parsePaging(c)
	result, err := serviceAdmin.ListApprovals(ctx, filter, page, limit)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

func (gr *groupAdmin) FilterApprovals(c echo.Context) error {
	ctx := c.Request().Context()

	serviceAdmin, err := do.Invoke[*services.ServiceAdmin](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	filter := &datastore.ApprovalFilter{
		Search: c.QueryParam("search"),
		Tier:   c.QueryParam("tier"),
	}

	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
		}
		filter.From = &t
	}

	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
		}
		filter.To = &t
	}

	if v := c.QueryParam("minBalance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
		}
		filter.MinBalance = &f
	}

	if v := c.QueryParam("maxBalance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
		}
		filter.MaxBalance = &f
	}

	page, limit := parsePaging(c)
	result, err := serviceAdmin.ListApprovals(ctx, filter, page, limit)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

func (gr *groupAdmin) ListClaims(c echo.Context) error {
	ctx := c.Request().Context()

	serviceAdmin, err := do.Invoke[*services.ServiceAdmin](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	filter := &datastore.ClaimFilter{
		Search: c.QueryParam("search"),
		Tier:   c.QueryParam("tier"),
		Status: c.QueryParam("status"),
	}

	page, limit := parsePaging(c)
	result, err := serviceAdmin.ListClaims(ctx, filter, page, limit)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

func (gr *groupAdmin) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	serviceAdmin, err := do.Invoke[*services.ServiceAdmin](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	stats, err := serviceAdmin.GetStats(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, stats, nil)
}

func (gr *groupAdmin) UserStats(c echo.Context) error {
	ctx := c.Request().Context()

	serviceApproval, err := do.Invoke[*services.ServiceApproval](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	stats, err := serviceApproval.GetUserStats(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, stats, nil)
}

func (gr *groupAdmin) ClaimStats(c echo.Context) error {
	ctx := c.Request().Context()

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	stats, err := serviceClaim.GetClaimStats(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, stats, nil)
}
