package cache

import (
	"context"
	"time"

	"frost-api/internal/domain/model"
	"frost-api/pkg/redis"
)

// HealthGateway reports the health of the Redis cache.
type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

// RedisHealthGateway implements HealthGateway against the shared Redis client.
type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redis.HealthCheck(ctx, gateway.client); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
