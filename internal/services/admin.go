package services

import (
	"context"
	"log"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"stardrop/internal/datastore"
	"stardrop/internal/models"
	"stardrop/internal/pkg/errorx"
)

type PagedApprovals struct {
	Items []*models.User `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Limit int            `json:"limit"`
}

type PagedClaims struct {
	Items []*models.Claim `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
	Limit int             `json:"limit"`
}

type AdminStats struct {
	Users        *models.UserStats    `json:"users"`
	Claims       *models.ClaimStats   `json:"claims"`
	Referrals    int                  `json:"referrals"`
	RecentClaims []*models.ClaimEvent `json:"recent_claims"`
}

type ServiceAdmin struct {
	container          *do.Injector
	readonlyPostgresDB *bun.DB

	serviceApproval *ServiceApproval
	serviceClaim    *ServiceClaim
}

func NewServiceAdmin(container *do.Injector) (*ServiceAdmin, error) {
	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	serviceApproval, err := do.Invoke[*ServiceApproval](container)
	if err != nil {
		return nil, err
	}

	serviceClaim, err := do.Invoke[*ServiceClaim](container)
	if err != nil {
		return nil, err
	}

	return &ServiceAdmin{container, readonlyPostgresDB, serviceApproval, serviceClaim}, nil
}

func (service *ServiceAdmin) ListApprovals(ctx context.Context, filter *datastore.ApprovalFilter, page, limit int) (*PagedApprovals, error) {
	page, limit = NormalizePaging(page, limit)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	items, err := datastore.ListApprovals(ctx, service.readonlyPostgresDB, filter)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	total, err := datastore.CountApprovals(ctx, service.readonlyPostgresDB, filter)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return &PagedApprovals{
		Items: items,
		Total: total,
		Page:  page,
		Pages: PageCount(total, limit),
		Limit: limit,
	}, nil
}

func (service *ServiceAdmin) ListClaims(ctx context.Context, filter *datastore.ClaimFilter, page, limit int) (*PagedClaims, error) {
	page, limit = NormalizePaging(page, limit)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	items, err := datastore.ListClaims(ctx, service.readonlyPostgresDB, filter)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	total, err := datastore.CountClaims(ctx, service.readonlyPostgresDB, filter)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return &PagedClaims{
		Items: items,
		Total: total,
		Page:  page,
		Pages: PageCount(total, limit),
		Limit: limit,
	}, nil
}

func (service *ServiceAdmin) GetStats(ctx context.Context) (*AdminStats, error) {
	userStats, err := service.serviceApproval.GetUserStats(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	claimStats, err := service.serviceClaim.GetClaimStats(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	referrals, err := datastore.CountReferrals(ctx, service.readonlyPostgresDB)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	recent, err := service.serviceClaim.GetRecentClaims(ctx, RECENT_CLAIMS_LIMIT)
	if err != nil {
		// feed is informational only
		log.Println("recent claims feed:", err)
		recent = nil
	}

	return &AdminStats{
		Users:        userStats,
		Claims:       claimStats,
		Referrals:    referrals,
		RecentClaims: recent,
	}, nil
}

func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func PageCount(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
