package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the approval record for a single wallet. One row per wallet,
// upserted on every save-approval call.
type User struct {
	bun.BaseModel `bun:"table:user"`
	Wallet        string     `bun:"wallet,pk" json:"wallet"`
	USDTBalance   string     `bun:"usdt_balance" json:"usdt_balance"`
	AirdropAmount float64    `bun:"airdrop_amount" json:"airdrop_amount"`
	ReferralCount int        `bun:"referral_count" json:"referral_count"`
	Approved      bool       `bun:"approved" json:"approved"`
	ApprovedAt    *time.Time `bun:"approved_at" json:"approved_at"`
	Tier          string     `bun:"tier" json:"tier"`
	CreatedAt     time.Time  `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at" json:"updated_at"`
}

// ApprovalRequest is the save-approval payload as the frontend sends it.
// The balance stays a string; wallets report it straight from the chain RPC.
type ApprovalRequest struct {
	Wallet        string  `json:"wallet"`
	USDTBalance   string  `json:"usdtBalance"`
	AirdropAmount float64 `json:"airdropAmount"`
	Tier          string  `json:"tier"`
}

type UserStats struct {
	TotalUsers    int     `json:"total_users"`
	ApprovedUsers int     `json:"approved_users"`
	TotalAirdrop  float64 `json:"total_airdrop"`
	TotalReferred int     `json:"total_referred"`
}
