package datastore

import (
	"context"
	"time"

	"stardrop/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableSetting(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Setting)(nil)).IfNotExists().Exec(ctx)
	return err
}

func GetSettingByKey(ctx context.Context, db *bun.DB, key string) (*models.Setting, error) {
	var setting models.Setting
	err := db.NewSelect().Model(&setting).Where("key = ?", key).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func UpsertSetting(ctx context.Context, db *bun.DB, key, value string) (*models.Setting, error) {
	setting := &models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	_, err := db.NewInsert().
		Model(setting).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return setting, nil
}

func InsertSettingIfAbsent(ctx context.Context, db *bun.DB, key, value string) error {
	setting := &models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	_, err := db.NewInsert().Model(setting).On("CONFLICT (key) DO NOTHING").Exec(ctx)
	return err
}
