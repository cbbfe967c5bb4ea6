package service

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
)

// CatalogSyncer keeps the pool aligned with an external endpoint catalog: a background
// loop lists the catalog every refreshInterval, registers new or changed endpoints and
// removes managed endpoints that left the catalog. Only endpoints the syncer itself has
// seen in a successful listing are managed; endpoints registered directly on the pool
// stay untouched until they show up in a listing. Unchanged configs are skipped so a
// sync pass never churns live sessions.
type CatalogSyncer struct {
	source          interfaces.CatalogSource
	pool            interfaces.EndpointPool
	refreshInterval time.Duration
	logger          log.Logger

	managed map[string]domain.EndpointConfig // endpoint id → last applied config
	done    chan struct{}
}

// NewCatalogSyncer creates the syncer, runs the first sync synchronously (so the pool
// is populated when this returns) and starts the background loop. Panics on nil
// source, pool or logger and on a non-positive refreshInterval.
//
// Parameters: source — catalog to mirror (e.g. adapters.CatalogHTTP or
// adapters.CatalogRedis); pool — pool to reconcile; refreshInterval — time between
// listings (e.g. 15s); logger — logger (listing errors are logged, state is kept).
//
// Returns: the syncer; callers must Stop it on shutdown.
//
// Called from cmd/main when a catalog source is configured.
func NewCatalogSyncer(
	source interfaces.CatalogSource,
	pool interfaces.EndpointPool,
	refreshInterval time.Duration,
	logger log.Logger,
) *CatalogSyncer {
	s := &CatalogSyncer{
		source:          helpers.NilPanic(source, "service.catalog_sync.go: source is required"),
		pool:            helpers.NilPanic(pool, "service.catalog_sync.go: pool is required"),
		refreshInterval: refreshInterval,
		logger:          log.WithPrefix(helpers.NilPanic(logger, "service.catalog_sync.go: logger is required"), "component", "catalog_syncer"),
		managed:         make(map[string]domain.EndpointConfig),
		done:            make(chan struct{}),
	}
	if refreshInterval <= 0 {
		panic("service.catalog_sync.go: refreshInterval must be positive")
	}
	s.sync(context.Background())
	go s.syncLoop()
	return s
}

// Stop terminates the background sync goroutine.
func (s *CatalogSyncer) Stop() {
	close(s.done)
}

// syncLoop runs sync every refreshInterval until Stop.
//
// Called only from NewCatalogSyncer in a separate goroutine.
func (s *CatalogSyncer) syncLoop() {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sync(context.Background())
		}
	}
}

// sync reconciles one catalog listing into the pool. On listing error it logs and
// keeps the previous state. Listed endpoints are normalized before diffing so a
// cosmetic difference (padding, threshold ordering) does not count as a change; an
// endpoint already registered with an identical config is adopted as managed without
// re-registering, because re-registration would purge its sessions. Managed endpoints
// missing from the listing are removed from the pool.
//
// Called from syncLoop on timer and once from NewCatalogSyncer at startup.
func (s *CatalogSyncer) sync(ctx context.Context) {
	configs, err := s.source.ListEndpoints(ctx)
	if err != nil {
		_ = log.With(s.logger, "err", err).Log("msg", "catalog listing failed, keeping previous endpoints")
		return
	}

	seen := make(map[string]bool, len(configs))
	for _, raw := range configs {
		normalized, err := normalizeEndpointConfig(raw)
		if err != nil {
			_ = log.With(s.logger, "err", err).Log("msg", "catalog endpoint rejected")
			continue
		}
		seen[normalized.EndpointID] = true

		prev, known := s.managed[normalized.EndpointID]
		if known && prev.Equal(normalized) {
			continue
		}
		if !known {
			if snapshot, err := s.pool.Snapshot(normalized.EndpointID); err == nil && snapshot.Config.Equal(normalized) {
				s.managed[normalized.EndpointID] = normalized
				continue
			}
		}

		registered, err := s.pool.RegisterEndpoint(normalized)
		if err != nil {
			_ = log.With(s.logger, "err", err).Log("msg", "catalog endpoint rejected", "endpoint_id", normalized.EndpointID)
			continue
		}
		s.managed[registered.EndpointID] = registered
	}

	for endpointID := range s.managed {
		if !seen[endpointID] {
			s.pool.RemoveEndpoint(endpointID)
			delete(s.managed, endpointID)
			level.Info(s.logger).Log("msg", "endpoint left the catalog", "endpoint_id", endpointID)
		}
	}
}
