package adapters

import (
	"context"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
	"mypool/service"
)

// NewCatalogRedis creates an interfaces.CatalogSource backed by the shared endpoint
// cache in redis, so several pool instances can serve one catalog. Panics on nil cache.
//
// Parameter cache — endpoint config cache (e.g. myredis.NewCache over the "endpoint"
// prefix).
//
// Returns: interfaces.CatalogSource (*catalogRedis).
//
// Called from cmd/main when REDIS_ADDR is configured.
func NewCatalogRedis(cache interfaces.Cache[domain.EndpointConfig]) interfaces.CatalogSource {
	return &catalogRedis{
		cache: helpers.NilPanic(cache, "adapters.catalog_redis.go: cache is required"),
	}
}

// catalogRedis implements interfaces.CatalogSource over the endpoint config cache.
type catalogRedis struct {
	cache interfaces.Cache[domain.EndpointConfig]
}

// ListEndpoints lists every endpoint config in the cache. The cache reports an empty
// prefix as entity_not_found; that is a normal empty catalog here, not an error.
//
// Parameter ctx — caller context, passed to the cache.
//
// Returns: ([]domain.EndpointConfig, nil) with the cached configs (possibly empty);
// (nil, error) on any other cache error.
//
// Called from service.CatalogSyncer.sync (on timer and at startup).
func (c *catalogRedis) ListEndpoints(ctx context.Context) ([]domain.EndpointConfig, error) {
	configs, err := c.cache.ListAllValues(ctx)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return []domain.EndpointConfig{}, nil
		}
		return nil, err
	}
	return configs, nil
}
