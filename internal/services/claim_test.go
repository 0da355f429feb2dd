package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"stardrop/internal/models"
	"stardrop/internal/pkg/errorx"
)

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) error {
	return nil
}

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	return bun.NewDB(sqldb, pgdialect.New()), mock
}

func claimColumns() []string {
	return []string{"id", "reference", "wallet", "usdt_balance", "airdrop_amount", "tier", "referrer", "tx_hash", "status", "claimed_at"}
}

// A wallet that already claimed gets its existing claim back with no second
// insert, regardless of the amounts in the repeat request.
func TestSaveClaimAlreadyClaimed(t *testing.T) {
	db, mock := newMockDB(t)

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(claimColumns()).
		AddRow(int64(7), "ref-1", "0xabc", 1500.0, 250.0, "silver", nil, nil, models.ClaimStatusCompleted, claimedAt)

	mock.ExpectQuery(`SELECT .+ FROM "claim"`).WillReturnRows(rows)

	service := &ServiceClaim{readonlyPostgresDB: db, limiter: allowAllLimiter{}}
	claim, alreadyClaimed, err := service.SaveClaim(context.Background(), &models.ClaimRequest{
		Wallet:        " 0xABC ",
		AirdropAmount: 9999.0,
	})
	require.NoError(t, err)
	assert.True(t, alreadyClaimed)
	assert.Equal(t, "ref-1", claim.Reference)
	assert.Equal(t, 250.0, claim.AirdropAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveClaimMissingWallet(t *testing.T) {
	service := &ServiceClaim{limiter: allowAllLimiter{}}

	_, _, err := service.SaveClaim(context.Background(), &models.ClaimRequest{Wallet: "   "})
	require.Error(t, err)
	assert.Equal(t, errorx.Invalid, errorx.KindOf(err))
}
