package datastore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSetting(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO "setting" .+ ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED\.value, updated_at = EXCLUDED\.updated_at`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	setting, err := UpsertSetting(context.Background(), db, "APPROVAL_WALLET", "0xdef")
	require.NoError(t, err)
	assert.Equal(t, "APPROVAL_WALLET", setting.Key)
	assert.Equal(t, "0xdef", setting.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSettingByKey(t *testing.T) {
	db, mock := newMockDB(t)

	updatedAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("APPROVAL_WALLET", "0xdef", updatedAt)

	mock.ExpectQuery(`SELECT .+ FROM "setting" WHERE \(key = 'APPROVAL_WALLET'\)`).WillReturnRows(rows)

	setting, err := GetSettingByKey(context.Background(), db, "APPROVAL_WALLET")
	require.NoError(t, err)
	assert.Equal(t, "0xdef", setting.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSettingByKeyMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "setting"`).WillReturnError(sql.ErrNoRows)

	_, err := GetSettingByKey(context.Background(), db, "ABSENT")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
