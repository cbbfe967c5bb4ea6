package interfaces

import (
	"context"

	"mypool/domain"
)

// CatalogSource provides the current set of endpoint configurations from a
// shared catalog (HTTP service or redis) so several pool processes can see
// the same endpoints.
//
// Implemented by adapters.CatalogHTTP and adapters.CatalogRedis. Called from
// service.CatalogSyncer on every sync pass.
//
//go:generate moq -stub -out mock/catalog_source.go -pkg mock . CatalogSource
type CatalogSource interface {
	// ListEndpoints returns every endpoint config currently in the catalog.
	// Parameter ctx — request context; cancel/timeout abort the fetch.
	// Returns: (configs, nil) on success — an empty slice is valid (empty catalog); (nil, error) on transport or decode failure.
	// Called from service.CatalogSyncer.sync; on error the syncer keeps its previous state.
	ListEndpoints(ctx context.Context) ([]domain.EndpointConfig, error)
}
