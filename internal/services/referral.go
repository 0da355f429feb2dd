package services

import (
	"context"
	"time"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"stardrop/internal/datastore"
	"stardrop/internal/models"
	"stardrop/internal/pkg/caching"
	"stardrop/internal/pkg/errorx"
)

type ReferralSummary struct {
	Referrals   []*models.Referral `json:"referrals"`
	TotalReward float64            `json:"total_reward"`
}

type ServiceReferral struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceReferral(container *do.Injector) (*ServiceReferral, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceReferral{container, postgresDB, readonlyPostgresDB, cache, readonlyCache}, nil
}

// SaveReferral appends the edge and bumps the referrer's counter. Duplicate
// edges are allowed, the campaign counts raw referral events.
func (service *ServiceReferral) SaveReferral(ctx context.Context, req *models.ReferralRequest) (*models.Referral, error) {
	referrer := NormalizeWallet(req.Referrer)
	if referrer == "" {
		return nil, errorx.Wrap(ErrMissingReferrer, errorx.Invalid)
	}

	referred := NormalizeWallet(req.Referred)
	if referred == "" {
		return nil, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	level := req.Level
	if level < 1 {
		level = 1
	}

	referral := &models.Referral{
		Referrer:  referrer,
		Referred:  referred,
		Level:     level,
		Reward:    req.Reward,
		CreatedAt: time.Now(),
	}

	if err := datastore.AddReferral(ctx, service.postgresDB, referral); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	_ = service.cache.Delete(ctx, DBKeyReferrals(referrer))
	_ = service.cache.Delete(ctx, DBKeyUser(referrer))

	return referral, nil
}

func (service *ServiceReferral) GetReferrals(ctx context.Context, wallet string) (*ReferralSummary, error) {
	wallet = NormalizeWallet(wallet)
	if wallet == "" {
		return nil, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	callback := func() (*ReferralSummary, error) {
		referrals, err := datastore.GetReferralsByReferrer(ctx, service.readonlyPostgresDB, wallet)
		if err != nil {
			return nil, err
		}

		total, err := datastore.SumReferralReward(ctx, service.readonlyPostgresDB, wallet)
		if err != nil {
			return nil, err
		}

		return &ReferralSummary{Referrals: referrals, TotalReward: total}, nil
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyReferrals(wallet), CACHE_TTL_15_SECONDS, callback)
}
