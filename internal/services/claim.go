package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"stardrop/internal/datastore"
	"stardrop/internal/datastore/redis_store"
	"stardrop/internal/interfaces"
	"stardrop/internal/models"
	"stardrop/internal/pkg/caching"
	"stardrop/internal/pkg/errorx"
)

type ClaimStatus struct {
	Claimed bool          `json:"claimed"`
	Claim   *models.Claim `json:"claim,omitempty"`
}

type ServiceClaim struct {
	container          *do.Injector
	redisDBCache       redis.UniversalClient
	rs                 *redsync.Redsync
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
	limiter            interfaces.Limiter
}

func NewServiceClaim(container *do.Injector) (*ServiceClaim, error) {
	dbRedisCache, err := do.InvokeNamed[redis.UniversalClient](container, "redis-cache")
	if err != nil {
		return nil, err
	}

	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

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

	return &ServiceClaim{container, dbRedisCache, rs, postgresDB, readonlyPostgresDB, cache, readonlyCache, lim}, nil
}

// SaveClaim records a disbursement once per wallet. Repeat calls and
// duplicate-key races both return the existing claim with alreadyClaimed set.
func (service *ServiceClaim) SaveClaim(ctx context.Context, req *models.ClaimRequest) (*models.Claim, bool, error) {
	wallet := NormalizeWallet(req.Wallet)
	if wallet == "" {
		return nil, false, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	err := service.limiter.Allow(ctx, LimitKeySave("claim", wallet), redis_rate.PerMinute(SAVE_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, false, errorx.Wrap(err, errorx.RateLimiting)
		}
		log.Println("claim limiter:", err)
	}

	existing, err := datastore.FindClaimByWallet(ctx, service.readonlyPostgresDB, wallet)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, errorx.Wrap(err, errorx.Service)
	}

	mutex := service.rs.NewMutex(LockKeyClaim(wallet))
	if err := mutex.Lock(); err != nil {
		return nil, false, errorx.Wrap(ErrClaimLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer mutex.Unlock()

	// re-check under the lock against the primary, the replica may lag
	existing, err = datastore.FindClaimByWallet(ctx, service.postgresDB, wallet)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, errorx.Wrap(err, errorx.Service)
	}

	tier := req.Tier
	if tier == "" {
		tier = models.TierBronze
	}

	claim := &models.Claim{
		Reference:     uuid.NewString(),
		Wallet:        wallet,
		USDTBalance:   req.USDTBalance,
		AirdropAmount: req.AirdropAmount,
		Tier:          tier,
		Referrer:      req.Referrer,
		TxHash:        req.TxHash,
		Status:        models.ClaimStatusCompleted,
		ClaimedAt:     time.Now(),
	}

	claim, err = datastore.CreateClaim(ctx, service.postgresDB, claim)
	if err != nil {
		if datastore.IsDuplicateKey(err) {
			// lost the race against another request for the same wallet
			existing, findErr := datastore.FindClaimByWallet(ctx, service.postgresDB, wallet)
			if findErr != nil {
				return nil, true, nil
			}
			return existing, true, nil
		}
		return nil, false, errorx.Wrap(err, errorx.Service)
	}

	// best effort, the claim row is the source of truth
	if err := datastore.ApplyClaimToUser(ctx, service.postgresDB, claim); err != nil {
		log.Println("apply claim to user:", err)
	}

	event := &models.ClaimEvent{
		Reference:     claim.Reference,
		Wallet:        claim.Wallet,
		AirdropAmount: claim.AirdropAmount,
		Tier:          claim.Tier,
		ClaimedAt:     claim.ClaimedAt,
	}
	if err := redis_store.PushClaimEvent(ctx, service.redisDBCache, event); err != nil {
		log.Println("push claim event:", err)
	}

	_ = service.cache.Delete(ctx, DBKeyClaimStatus(wallet))
	_ = service.cache.Delete(ctx, DBKeyUser(wallet))
	_ = service.cache.Delete(ctx, DBKeyClaimStats())

	return claim, false, nil
}

func (service *ServiceClaim) GetClaimStatus(ctx context.Context, wallet string) (*ClaimStatus, error) {
	wallet = NormalizeWallet(wallet)
	if wallet == "" {
		return nil, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	callback := func() (*ClaimStatus, error) {
		claim, err := datastore.FindClaimByWallet(ctx, service.readonlyPostgresDB, wallet)
		if errors.Is(err, sql.ErrNoRows) {
			return &ClaimStatus{Claimed: false}, nil
		}
		if err != nil {
			return nil, err
		}
		return &ClaimStatus{Claimed: true, Claim: claim}, nil
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyClaimStatus(wallet), CACHE_TTL_15_SECONDS, callback)
}

func (service *ServiceClaim) GetClaimStats(ctx context.Context) (*models.ClaimStats, error) {
	callback := func() (*models.ClaimStats, error) {
		return datastore.GetClaimStats(ctx, service.readonlyPostgresDB)
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyClaimStats(), CACHE_TTL_15_SECONDS, callback)
}

func (service *ServiceClaim) GetRecentClaims(ctx context.Context, limit int) ([]*models.ClaimEvent, error) {
	return redis_store.GetRecentClaimEvents(ctx, service.redisDBCache, limit)
}
