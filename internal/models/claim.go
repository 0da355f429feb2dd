package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ClaimStatusCompleted = "completed"
	ClaimStatusPending   = "pending"
)

// Claim is a recorded airdrop disbursement. The wallet column carries a
// unique index; a duplicate insert means the wallet already claimed.
type Claim struct {
	bun.BaseModel `bun:"table:claim"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Reference     string    `bun:"reference" json:"reference"`
	Wallet        string    `bun:"wallet" json:"wallet"`
	USDTBalance   float64   `bun:"usdt_balance" json:"usdt_balance"`
	AirdropAmount float64   `bun:"airdrop_amount" json:"airdrop_amount"`
	Tier          string    `bun:"tier" json:"tier"`
	Referrer      *string   `bun:"referrer" json:"referrer"`
	TxHash        *string   `bun:"tx_hash" json:"tx_hash"`
	Status        string    `bun:"status,default:'completed'" json:"status"`
	ClaimedAt     time.Time `bun:"claimed_at,default:current_timestamp" json:"claimed_at"`
}

type ClaimRequest struct {
	Wallet        string  `json:"wallet"`
	USDTBalance   float64 `json:"usdtBalance"`
	AirdropAmount float64 `json:"airdropAmount"`
	Tier          string  `json:"tier"`
	Referrer      *string `json:"referrer"`
	TxHash        *string `json:"txHash"`
}

// ClaimEvent is the compact feed entry pushed to redis on every new claim.
type ClaimEvent struct {
	Reference     string    `msgpack:"reference" json:"reference"`
	Wallet        string    `msgpack:"wallet" json:"wallet"`
	AirdropAmount float64   `msgpack:"airdrop_amount" json:"airdrop_amount"`
	Tier          string    `msgpack:"tier" json:"tier"`
	ClaimedAt     time.Time `msgpack:"claimed_at" json:"claimed_at"`
}

type ClaimStats struct {
	TotalClaims  int     `json:"total_claims"`
	TotalAirdrop float64 `json:"total_airdrop"`
	Completed    int     `json:"completed"`
	Pending      int     `json:"pending"`
}
