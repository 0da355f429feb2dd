package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Referral is one referrer→referred edge. Edges are append-only and carry
// no uniqueness constraint.
type Referral struct {
	bun.BaseModel `bun:"table:referral"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Referrer      string    `bun:"referrer" json:"referrer"`
	Referred      string    `bun:"referred" json:"referred"`
	Level         int       `bun:"level,default:1" json:"level"`
	Reward        float64   `bun:"reward" json:"reward"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}

type ReferralRequest struct {
	Referrer string  `json:"referrer"`
	Referred string  `json:"referred"`
	Level    int     `json:"level"`
	Reward   float64 `json:"reward"`
}
