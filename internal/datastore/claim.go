package datastore

import (
	"context"
	"errors"

	"stardrop/internal/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

func CreateTableClaim(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Claim)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Claim)(nil)).Index("index_claim_wallet").Unique().IfNotExists().Column("wallet").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Claim)(nil)).Index("index_claim_claimed_at").IfNotExists().Column("claimed_at").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// if the wallet never claimed, return sql.ErrNoRows
func FindClaimByWallet(ctx context.Context, db *bun.DB, wallet string) (*models.Claim, error) {
	var claim models.Claim
	err := db.NewSelect().Model(&claim).Where("wallet = ?", wallet).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func CreateClaim(ctx context.Context, db *bun.DB, claim *models.Claim) (*models.Claim, error) {
	_, err := db.NewInsert().Model(claim).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// IsDuplicateKey reports whether err is a postgres unique violation, the
// lost side of a concurrent double claim.
func IsDuplicateKey(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

type ClaimFilter struct {
	Search string
	Tier   string
	Status string
	Limit  int
	Offset int
}

func (f *ClaimFilter) apply(q *bun.SelectQuery) *bun.SelectQuery {
	if f.Search != "" {
		q = q.Where("wallet ILIKE ?", "%"+f.Search+"%")
	}
	if f.Tier != "" {
		q = q.Where("tier = ?", f.Tier)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func ListClaims(ctx context.Context, db *bun.DB, filter *ClaimFilter) ([]*models.Claim, error) {
	var claims []*models.Claim
	err := filter.apply(db.NewSelect().Model(&claims)).
		Order("claimed_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func CountClaims(ctx context.Context, db *bun.DB, filter *ClaimFilter) (int, error) {
	return filter.apply(db.NewSelect().Model((*models.Claim)(nil))).Count(ctx)
}

func GetClaimStats(ctx context.Context, db *bun.DB) (*models.ClaimStats, error) {
	var stats models.ClaimStats
	err := db.NewSelect().
		Model((*models.Claim)(nil)).
		ColumnExpr("count(*) AS total_claims").
		ColumnExpr("coalesce(sum(airdrop_amount), 0) AS total_airdrop").
		ColumnExpr("count(*) FILTER (WHERE status = ?) AS completed", models.ClaimStatusCompleted).
		ColumnExpr("count(*) FILTER (WHERE status = ?) AS pending", models.ClaimStatusPending).
		Scan(ctx, &stats.TotalClaims, &stats.TotalAirdrop, &stats.Completed, &stats.Pending)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
