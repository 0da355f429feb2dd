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
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	return bun.NewDB(sqldb, pgdialect.New()), mock
}

func TestFindClaimByWallet(t *testing.T) {
	db, mock := newMockDB(t)

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "reference", "wallet", "usdt_balance", "airdrop_amount", "tier", "referrer", "tx_hash", "status", "claimed_at"}).
		AddRow(int64(7), "ref-1", "0xabc", 1500.0, 250.0, "silver", nil, nil, "completed", claimedAt)

	mock.ExpectQuery(`SELECT .+ FROM "claim"`).WillReturnRows(rows)

	claim, err := FindClaimByWallet(context.Background(), db, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", claim.Wallet)
	assert.Equal(t, "ref-1", claim.Reference)
	assert.Equal(t, 250.0, claim.AirdropAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClaimByWalletNotClaimed(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "claim"`).WillReturnError(sql.ErrNoRows)

	_, err := FindClaimByWallet(context.Background(), db, "0xmissing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(sql.ErrNoRows))
}
