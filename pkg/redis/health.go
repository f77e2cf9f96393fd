package redis

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck performs a round-trip health check on the Redis connection:
// connectivity plus a set/get/delete cycle on a probe key.
func HealthCheck(ctx context.Context, client *Client) error {
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	probeKey := "health_check_probe"
	probeValue := "ok"

	if err := client.Set(ctx, probeKey, probeValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}

	value, err := client.Get(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if value != probeValue {
		return fmt.Errorf("value mismatch: expected %s, got %s", probeValue, value)
	}

	if err := client.Delete(ctx, probeKey); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}

	return nil
}
