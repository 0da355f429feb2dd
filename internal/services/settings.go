package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"stardrop/internal/datastore"
	"stardrop/internal/models"
	"stardrop/internal/pkg/caching"
	"stardrop/internal/pkg/errorx"
)

type ServiceSettings struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceSettings(container *do.Injector) (*ServiceSettings, error) {
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

	return &ServiceSettings{container, postgresDB, readonlyPostgresDB, cache, readonlyCache}, nil
}

func (service *ServiceSettings) GetApprovalWallet(ctx context.Context) (*models.Setting, error) {
	callback := func() (*models.Setting, error) {
		return datastore.GetSettingByKey(ctx, service.readonlyPostgresDB, SETTING_APPROVAL_WALLET)
	}

	setting, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyApprovalWallet(), CACHE_TTL_1_MIN, callback)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("approval wallet not configured"), errorx.NotExist)
	}

	return setting, err
}

func (service *ServiceSettings) UpdateApprovalWallet(ctx context.Context, wallet string) (*models.Setting, error) {
	wallet = NormalizeWallet(wallet)
	if wallet == "" {
		return nil, errorx.Wrap(ErrMissingWallet, errorx.Invalid)
	}

	setting, err := datastore.UpsertSetting(ctx, service.postgresDB, SETTING_APPROVAL_WALLET, wallet)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	_ = service.cache.Delete(ctx, DBKeyApprovalWallet())

	return setting, nil
}

func (service *ServiceSettings) UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	return datastore.UpsertSetting(ctx, service.postgresDB, key, value)
}
