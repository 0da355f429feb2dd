package datastore

import (
	"context"
	"time"

	"stardrop/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableUser(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_user_tier").IfNotExists().Column("tier").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_user_approved_at").IfNotExists().Column("approved_at").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func FindUserByWallet(ctx context.Context, db *bun.DB, wallet string) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("wallet = ?", wallet).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser keeps one row per wallet. referral_count and created_at are
// insert-only; repeat approvals overwrite the rest with the latest values.
// Returns the stored row, insert-only columns included.
func UpsertUser(ctx context.Context, db *bun.DB, user *models.User) (*models.User, error) {
	_, err := db.NewInsert().
		Model(user).
		On("CONFLICT (wallet) DO UPDATE").
		Set("usdt_balance = EXCLUDED.usdt_balance").
		Set("airdrop_amount = EXCLUDED.airdrop_amount").
		Set("approved = EXCLUDED.approved").
		Set("approved_at = EXCLUDED.approved_at").
		Set("tier = EXCLUDED.tier").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ApplyClaimToUser mirrors a fresh claim onto the user row. Missing user row
// is fine, claims can arrive before any approval.
func ApplyClaimToUser(ctx context.Context, db *bun.DB, claim *models.Claim) error {
	_, err := db.NewUpdate().
		Model((*models.User)(nil)).
		Set("airdrop_amount = ?", claim.AirdropAmount).
		Set("tier = ?", claim.Tier).
		Set("updated_at = ?", time.Now()).
		Where("wallet = ?", claim.Wallet).
		Exec(ctx)
	return err
}

type ApprovalFilter struct {
	Search     string
	Tier       string
	From       *time.Time
	To         *time.Time
	MinBalance *float64
	MaxBalance *float64
	Limit      int
	Offset     int
}

func (f *ApprovalFilter) apply(q *bun.SelectQuery) *bun.SelectQuery {
	if f.Search != "" {
		q = q.Where("wallet ILIKE ?", "%"+f.Search+"%")
	}
	if f.Tier != "" {
		q = q.Where("tier = ?", f.Tier)
	}
	if f.From != nil {
		q = q.Where("approved_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("approved_at <= ?", *f.To)
	}
	if f.MinBalance != nil {
		q = q.Where("usdt_balance::numeric >= ?", *f.MinBalance)
	}
	if f.MaxBalance != nil {
		q = q.Where("usdt_balance::numeric <= ?", *f.MaxBalance)
	}
	return q
}

func ListApprovals(ctx context.Context, db *bun.DB, filter *ApprovalFilter) ([]*models.User, error) {
	var users []*models.User
	err := filter.apply(db.NewSelect().Model(&users).Where("approved")).
		Order("approved_at DESC NULLS LAST").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func CountApprovals(ctx context.Context, db *bun.DB, filter *ApprovalFilter) (int, error) {
	return filter.apply(db.NewSelect().Model((*models.User)(nil)).Where("approved")).Count(ctx)
}

func GetUserStats(ctx context.Context, db *bun.DB) (*models.UserStats, error) {
	var stats models.UserStats
	err := db.NewSelect().
		Model((*models.User)(nil)).
		ColumnExpr("count(*) AS total_users").
		ColumnExpr("count(*) FILTER (WHERE approved) AS approved_users").
		ColumnExpr("coalesce(sum(airdrop_amount), 0) AS total_airdrop").
		ColumnExpr("coalesce(sum(referral_count), 0) AS total_referred").
		Scan(ctx, &stats.TotalUsers, &stats.ApprovedUsers, &stats.TotalAirdrop, &stats.TotalReferred)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
