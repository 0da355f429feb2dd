package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrClaimLock = errors.New("claim locked")
var ErrMissingWallet = errors.New("wallet address is required")
var ErrMissingReferrer = errors.New("referrer address is required")

const (
	SETTING_APPROVAL_WALLET = "APPROVAL_WALLET"
	SETTING_STATS_SNAPSHOT  = "STATS_SNAPSHOT"

	CACHE_TTL_15_SECONDS = 15 * time.Second
	CACHE_TTL_1_MIN      = 1 * time.Minute
	CACHE_TTL_5_MINS     = 5 * time.Minute

	SAVE_RATE_LIMIT_PER_MINUTE = 30

	RECENT_CLAIMS_LIMIT = 20
)

func LockKeyClaim(wallet string) string {
	return fmt.Sprintf("lock:claim:%s", strings.ToLower(wallet))
}

// db
func DBKeyUser(wallet string) string {
	return fmt.Sprintf("user:%s", strings.ToLower(wallet))
}

func DBKeyClaimStatus(wallet string) string {
	return fmt.Sprintf("claim_status:%s", strings.ToLower(wallet))
}

func DBKeyReferrals(wallet string) string {
	return fmt.Sprintf("referrals:%s", strings.ToLower(wallet))
}

func DBKeyApprovalWallet() string {
	return "setting:approval_wallet"
}

func DBKeyUserStats() string {
	return "stats:user"
}

func DBKeyClaimStats() string {
	return "stats:claim"
}

func LimitKeySave(route string, wallet string) string {
	return fmt.Sprintf("limit:%s:%s", route, strings.ToLower(wallet))
}
