package datastore

import (
	"context"

	"stardrop/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableReferral(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Referral)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Referral)(nil)).Index("index_referral_referrer").IfNotExists().Column("referrer").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// AddReferral inserts the edge and bumps the referrer's counter in one
// transaction. The counter update touches zero rows when the referrer never
// saved an approval; the edge is kept regardless.
func AddReferral(ctx context.Context, db *bun.DB, referral *models.Referral) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(referral).Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("referral_count = referral_count + 1").
			Where("wallet = ?", referral.Referrer).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}

func GetReferralsByReferrer(ctx context.Context, db *bun.DB, referrer string) ([]*models.Referral, error) {
	var referrals []*models.Referral
	err := db.NewSelect().Model(&referrals).Where("referrer = ?", referrer).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	return referrals, nil
}

func SumReferralReward(ctx context.Context, db *bun.DB, referrer string) (float64, error) {
	var total float64
	err := db.NewSelect().
		Model((*models.Referral)(nil)).
		ColumnExpr("coalesce(sum(reward), 0)").
		Where("referrer = ?", referrer).
		Scan(ctx, &total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func CountReferrals(ctx context.Context, db *bun.DB) (int, error) {
	return db.NewSelect().Model((*models.Referral)(nil)).Count(ctx)
}
