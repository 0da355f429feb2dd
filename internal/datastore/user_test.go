package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stardrop/internal/models"
)

func userColumns() []string {
	return []string{"wallet", "usdt_balance", "airdrop_amount", "referral_count", "approved", "approved_at", "tier", "created_at", "updated_at"}
}

// A repeat approval must not touch referral_count or created_at, and the
// returned model must carry the stored values, not the request's zero ones.
func TestUpsertUserKeepsInsertOnlyColumns(t *testing.T) {
	db, mock := newMockDB(t)

	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	approvedAt := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns()).
		AddRow("0xaaa", "2500", 300.0, 3, true, approvedAt, "silver", created, approvedAt)

	mock.ExpectQuery(`INSERT INTO "user" .+ ON CONFLICT \(wallet\) DO UPDATE SET usdt_balance = EXCLUDED\.usdt_balance, airdrop_amount = EXCLUDED\.airdrop_amount, approved = EXCLUDED\.approved, approved_at = EXCLUDED\.approved_at, tier = EXCLUDED\.tier, updated_at = EXCLUDED\.updated_at RETURNING \*`).
		WillReturnRows(rows)

	user, err := UpsertUser(context.Background(), db, &models.User{
		Wallet:        "0xaaa",
		USDTBalance:   "2500",
		AirdropAmount: 300.0,
		Approved:      true,
		ApprovedAt:    &approvedAt,
		Tier:          "silver",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, user.ReferralCount)
	assert.True(t, user.CreatedAt.Equal(created))
	assert.Equal(t, "2500", user.USDTBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovalsAppliesLimit(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("0xaaa", "1200", 100.0, 0, true, now, "silver", now, now).
		AddRow("0xbbb", "50000", 400.0, 2, true, now, "gold", now, now)

	mock.ExpectQuery(`SELECT .+ FROM "user" .*LIMIT 5 OFFSET 10`).WillReturnRows(rows)

	filter := &ApprovalFilter{Tier: "", Limit: 5, Offset: 10}
	users, err := ListApprovals(context.Background(), db, filter)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "0xaaa", users[0].Wallet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovalsFilters(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows(userColumns())
	mock.ExpectQuery(`SELECT .+ FROM "user" WHERE \(approved\) AND \(wallet ILIKE '%abc%'\) AND \(tier = 'gold'\)`).WillReturnRows(rows)

	filter := &ApprovalFilter{Search: "abc", Tier: "gold", Limit: 20}
	users, err := ListApprovals(context.Background(), db, filter)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserStats(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"total_users", "approved_users", "total_airdrop", "total_referred"}).
		AddRow(int64(42), int64(40), 10500.5, int64(13))

	mock.ExpectQuery(`SELECT count\(\*\) AS total_users`).WillReturnRows(rows)

	stats, err := GetUserStats(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 40, stats.ApprovedUsers)
	assert.Equal(t, 10500.5, stats.TotalAirdrop)
	assert.Equal(t, 13, stats.TotalReferred)
}
