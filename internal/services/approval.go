package services

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"stardrop/internal/datastore"
	"stardrop/internal/interfaces"
	"stardrop/internal/models"
	"stardrop/internal/pkg/caching"
	"stardrop/internal/pkg/errorx"
)

type ServiceApproval struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
	limiter            interfaces.Limiter
}

func NewServiceApproval(container *do.Injector) (*ServiceApproval, error) {
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

	lim, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	return &ServiceApproval{container, postgresDB, readonlyPostgresDB, cache, readonlyCache, lim}, nil
}

// SaveApproval upserts the wallet's approval record. A datastore failure is
// reported as offline=true with no error: the campaign frontend must never
// stall on backend trouble.
func (service *ServiceApproval) SaveApproval(ctx context.Context, req *models.ApprovalRequest) (*models.User, bool, error) {
	wallet := NormalizeWallet(req.Wallet)
	if wallet == "" {
		return nil, false, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	err := service.limiter.Allow(ctx, LimitKeySave("approval", wallet), redis_rate.PerMinute(SAVE_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, false, errorx.Wrap(err, errorx.RateLimiting)
		}
		// limiter backend down, let the request through
		log.Println("approval limiter:", err)
	}

	tier := req.Tier
	if tier == "" {
		tier = models.TierForBalance(req.USDTBalance)
	}

	now := time.Now()
	user := &models.User{
		Wallet:        wallet,
		USDTBalance:   NormalizeBalance(req.USDTBalance),
		AirdropAmount: req.AirdropAmount,
		Approved:      true,
		ApprovedAt:    &now,
		Tier:          tier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	user, err = datastore.UpsertUser(ctx, service.postgresDB, user)
	if err != nil {
		log.Println("save approval, falling back to offline mode:", err)
		return nil, true, nil
	}

	_ = service.cache.Delete(ctx, DBKeyUser(wallet))
	_ = service.cache.Delete(ctx, DBKeyUserStats())

	return user, false, nil
}

func (service *ServiceApproval) FindUserByWallet(ctx context.Context, wallet string) (*models.User, error) {
	callback := func() (*models.User, error) {
		return datastore.FindUserByWallet(ctx, service.readonlyPostgresDB, NormalizeWallet(wallet))
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUser(wallet), CACHE_TTL_1_MIN, callback)
}

func (service *ServiceApproval) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	callback := func() (*models.UserStats, error) {
		return datastore.GetUserStats(ctx, service.readonlyPostgresDB)
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUserStats(), CACHE_TTL_15_SECONDS, callback)
}

func NormalizeWallet(wallet string) string {
	return strings.ToLower(strings.TrimSpace(wallet))
}

// NormalizeBalance keeps the column castable to numeric for the admin range
// filters. The value is reformatted rather than passed through: ParseFloat
// also accepts hex floats, Inf and NaN, none of which postgres numeric takes.
func NormalizeBalance(balance string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(balance), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
