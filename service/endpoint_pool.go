package service

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
)

const (
	defaultDecay       = 0.3
	defaultLatencyMs   = 100.0
	defaultStickyTTLMs = 300000
)

// endpointEntry pairs an endpoint's registered config with its mutable health record.
// Both live and die together: replacing or removing the endpoint discards the pair.
type endpointEntry struct {
	config domain.EndpointConfig
	health healthState
}

// endpointPool is the single externally visible pool object. One mutex guards all four
// indexes because Acquire reads health and capacity and then mints a session as one
// atomic step; a read-then-write race here could overshoot an endpoint's session cap.
// All critical sections are short and CPU-bound: callers perform the real network call
// between Acquire and RecordResult/Release with no pool lock held.
type endpointPool struct {
	config       domain.PoolConfig
	timeProvider interfaces.TimeProvider
	logger       log.Logger

	mu        sync.RWMutex
	endpoints map[string]*endpointEntry
	order     []string // endpoint ids in registration order, the scoring tiebreaker
	sessions  map[string]*session
	bindings  map[string]*stickyBinding
	seqs      map[string]uint64 // per-endpoint session sequence, survives remove
}

// hydratePoolConfig fills zero values with defaults and rejects out-of-range tuning.
//
// Returns:
//  1. the hydrated config
//  2. configuration_error when decay is outside (0,1], a latency or TTL is negative,
//     or a value is NaN
func hydratePoolConfig(config domain.PoolConfig) (domain.PoolConfig, error) {
	if math.IsNaN(config.Decay) || config.Decay < 0 || config.Decay > 1 {
		return domain.PoolConfig{}, NewConfigurationError("decay must be in (0, 1]", nil)
	}
	if config.Decay == 0 {
		config.Decay = defaultDecay
	}

	if math.IsNaN(config.DefaultLatencyMs) || config.DefaultLatencyMs < 0 {
		return domain.PoolConfig{}, NewConfigurationError("default latency must not be negative", nil)
	}
	if config.DefaultLatencyMs == 0 {
		config.DefaultLatencyMs = defaultLatencyMs
	}

	if config.StickyTTLMs < 0 {
		return domain.PoolConfig{}, NewConfigurationError("sticky ttl must not be negative", nil)
	}
	if config.StickyTTLMs == 0 {
		config.StickyTTLMs = defaultStickyTTLMs
	}

	if config.DefaultLeaseTTLMs < 0 {
		return domain.PoolConfig{}, NewConfigurationError("default lease ttl must not be negative", nil)
	}

	return config, nil
}

// NewEndpointPool creates the pool.
//
// Parameters:
//   - config: pool-wide tuning; zero values select documented defaults.
//   - timeProvider: clock used for lease expiry, cooldown windows and sticky TTLs.
//   - logger: logger.
//
// Returns:
//  1. the pool
//  2. configuration_error when config holds out-of-range tuning
//
// Called from cmd/main and test code.
func NewEndpointPool(config domain.PoolConfig, timeProvider interfaces.TimeProvider, logger log.Logger) (interfaces.EndpointPool, error) {
	helpers.NilPanic(timeProvider, "service.endpoint_pool.go: timeProvider is required")
	helpers.NilPanic(logger, "service.endpoint_pool.go: logger is required")

	hydrated, err := hydratePoolConfig(config)
	if err != nil {
		return nil, err
	}

	return &endpointPool{
		config:       hydrated,
		timeProvider: timeProvider,
		logger:       log.WithPrefix(logger, "component", "endpoint_pool"),
		endpoints:    map[string]*endpointEntry{},
		sessions:     map[string]*session{},
		bindings:     map[string]*stickyBinding{},
		seqs:         map[string]uint64{},
	}, nil
}

// Acquire implements interfaces.EndpointPool. Expired sessions and bindings are swept
// first, so freed capacity is visible to this call. The sticky path tolerates
// degraded endpoints (allowUnhealthy=true) to preserve continuity; only the capacity
// cap can break a binding's reuse. Scored selection tries strictly healthy endpoints
// first and falls back to the relaxed predicate unless opts.StrictHealthy.
func (p *endpointPool) Acquire(opts domain.AcquireOptions) (domain.Lease, error) {
	now := p.timeProvider.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.sweepExpiredLocked(now)
	p.sweepBindingsLocked(now)

	if opts.ClientID != "" {
		if entry := p.boundEndpointLocked(opts.ClientID, now); entry != nil && p.isAvailableLocked(entry, now, true) {
			p.bindClientLocked(opts.ClientID, entry.config.EndpointID, now)
			return p.mintSessionLocked(entry, now, opts), nil
		}
	}

	entry := p.selectBestLocked(now, false)
	if entry == nil && !opts.StrictHealthy {
		if entry = p.selectBestLocked(now, true); entry != nil {
			level.Info(p.logger).Log(
				"msg", "no healthy endpoint, serving degraded",
				"endpoint_id", entry.config.EndpointID,
			)
		}
	}
	if entry == nil {
		level.Info(p.logger).Log("msg", "pool exhausted", "strict_healthy", opts.StrictHealthy)
		return domain.Lease{}, NewNotAvailableError("no endpoint available", nil)
	}

	if opts.ClientID != "" {
		p.bindClientLocked(opts.ClientID, entry.config.EndpointID, now)
	}
	return p.mintSessionLocked(entry, now, opts), nil
}

// selectBestLocked returns the available endpoint with the strictly greatest score, or
// nil when none passes the availability predicate. Iterating in registration order and
// replacing only on strictly greater scores makes ties deterministic: the earliest
// registered endpoint wins. Caller must hold the lock.
func (p *endpointPool) selectBestLocked(now time.Time, allowUnhealthy bool) *endpointEntry {
	var best *endpointEntry
	bestScore := 0.0
	for _, endpointID := range p.order {
		entry := p.endpoints[endpointID]
		if !p.isAvailableLocked(entry, now, allowUnhealthy) {
			continue
		}
		score := scoreEndpoint(entry.config, entry.health, now, p.config.DefaultLatencyMs)
		if best == nil || score > bestScore {
			best = entry
			bestScore = score
		}
	}
	return best
}

// Release implements interfaces.EndpointPool.
func (p *endpointPool) Release(sessionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.releaseLocked(sessionID)
}

// RecordResult implements interfaces.EndpointPool. Health transitions driven by the
// outcome are logged; the optional session release shares the same critical section
// so the health update and the capacity return are one atomic step.
func (p *endpointPool) RecordResult(endpointID string, success bool, latencyMs *float64, sessionID *string) error {
	now := p.timeProvider.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.endpoints[endpointID]
	if !ok {
		return NewUnknownEndpointError(fmt.Sprintf("endpoint %s is not registered", endpointID), nil)
	}

	wasHealthy := entry.health.healthy
	entry.health.applyResult(now, success, latencyMs, p.config.Decay, entry.config)
	if entry.health.healthy != wasHealthy {
		level.Info(p.logger).Log(
			"msg", "endpoint health changed",
			"endpoint_id", endpointID,
			"healthy", entry.health.healthy,
			"success_ewma", entry.health.successEWMA,
		)
	}

	if sessionID != nil {
		p.releaseLocked(*sessionID)
	}
	return nil
}

// Snapshot implements interfaces.EndpointPool.
func (p *endpointPool) Snapshot(endpointID string) (domain.Snapshot, error) {
	now := p.timeProvider.Now()

	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.endpoints[endpointID]
	if !ok {
		return domain.Snapshot{}, NewUnknownEndpointError(fmt.Sprintf("endpoint %s is not registered", endpointID), nil)
	}
	return p.snapshotLocked(entry, now), nil
}

// DescribeAll implements interfaces.EndpointPool. Snapshots come back in registration
// order under a single read lock, so the slice is one consistent point-in-time view.
func (p *endpointPool) DescribeAll() []domain.Snapshot {
	now := p.timeProvider.Now()

	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.Snapshot, 0, len(p.order))
	for _, endpointID := range p.order {
		out = append(out, p.snapshotLocked(p.endpoints[endpointID], now))
	}
	return out
}

// snapshotLocked projects one entry into a caller-owned snapshot. Caller must hold at
// least the read lock.
func (p *endpointPool) snapshotLocked(entry *endpointEntry, now time.Time) domain.Snapshot {
	return domain.Snapshot{
		Config:         entry.config.Clone(),
		Healthy:        entry.health.healthy,
		SuccessEWMA:    entry.health.successEWMA,
		LatencyEWMAMs:  entry.health.latencyEWMAMs,
		Observations:   entry.health.observations,
		ActiveSessions: entry.health.activeSessions,
		LastFailureAt:  entry.health.lastFailureAt,
		CooldownUntil:  entry.health.cooldownUntil,
		Score:          scoreEndpoint(entry.config, entry.health, now, p.config.DefaultLatencyMs),
	}
}
