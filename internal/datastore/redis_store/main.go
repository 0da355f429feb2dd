package redis_store

import (
	"context"

	"stardrop/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const recentClaimsMax = 50

func dbKeyRecentClaims() string {
	return "claims:recent"
}

// PushClaimEvent prepends the event to the recent-claims feed and trims it.
// The feed is informational; callers treat failures as non-fatal.
func PushClaimEvent(ctx context.Context, client redis.UniversalClient, event *models.ClaimEvent) error {
	b, err := msgpack.Marshal(event)
	if err != nil {
		return err
	}

	pipe := client.TxPipeline()
	pipe.LPush(ctx, dbKeyRecentClaims(), b)
	pipe.LTrim(ctx, dbKeyRecentClaims(), 0, recentClaimsMax-1)
	_, err = pipe.Exec(ctx)
	return err
}

func GetRecentClaimEvents(ctx context.Context, client redis.UniversalClient, limit int) ([]*models.ClaimEvent, error) {
	if limit <= 0 || limit > recentClaimsMax {
		limit = recentClaimsMax
	}

	raw, err := client.LRange(ctx, dbKeyRecentClaims(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*models.ClaimEvent, 0, len(raw))
	for _, item := range raw {
		var event models.ClaimEvent
		if err := msgpack.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		events = append(events, &event)
	}

	return events, nil
}
