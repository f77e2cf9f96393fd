package cache

import (
	"context"

	"frost-api/internal/domain/model"
	"frost-api/pkg/redis"
)

// DatasetCache memoizes departmental datasets so repeated dashboard
// interactions do not re-fetch unchanged data.
type DatasetCache interface {
	GetDataset(ctx context.Context, dept string) (*model.DepartmentDataset, bool, error)
	PutDataset(ctx context.Context, dept string, dataset *model.DepartmentDataset) error
	Invalidate(ctx context.Context, dept string) error
}

// datasetCacheName is the cache namespace; its TTL is configurable per cache
// name on the Redis client.
const datasetCacheName = "frost_datasets"

// RedisDatasetCache implements DatasetCache on the shared Redis client.
type RedisDatasetCache struct {
	cache *redis.Cache
}

var _ DatasetCache = (*RedisDatasetCache)(nil)

func NewRedisDatasetCache(client *redis.Client) *RedisDatasetCache {
	opts := redis.NewCacheOptions().WithCacheName(datasetCacheName)
	return &RedisDatasetCache{
		cache: redis.NewCache(client, opts),
	}
}

func (c *RedisDatasetCache) GetDataset(ctx context.Context, dept string) (*model.DepartmentDataset, bool, error) {
	var dataset model.DepartmentDataset
	found, err := c.cache.Get(ctx, dept, &dataset)
	if err != nil || !found {
		return nil, false, err
	}
	return &dataset, true, nil
}

func (c *RedisDatasetCache) PutDataset(ctx context.Context, dept string, dataset *model.DepartmentDataset) error {
	return c.cache.Set(ctx, dept, dataset)
}

func (c *RedisDatasetCache) Invalidate(ctx context.Context, dept string) error {
	return c.cache.Delete(ctx, dept)
}
