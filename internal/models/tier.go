package models

import "strconv"

const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
	TierWhale  = "whale"
)

// TierForBalance buckets a wallet by its reported USDT balance. The frontend
// usually sends the tier itself; this is the fallback when it doesn't.
func TierForBalance(balance string) string {
	v, err := strconv.ParseFloat(balance, 64)
	if err != nil || v < 0 {
		return TierBronze
	}

	switch {
	case v >= 100_000:
		return TierWhale
	case v >= 10_000:
		return TierGold
	case v >= 1_000:
		return TierSilver
	default:
		return TierBronze
	}
}
