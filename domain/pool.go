package domain

// PoolConfig is pool-wide tuning shared by every endpoint. Zero values are
// hydrated to defaults by the pool constructor; out-of-range values are
// rejected there.
type PoolConfig struct {
	// Decay is the EWMA blending factor in (0, 1]: new = decay*sample +
	// (1-decay)*old. 0 selects the default (0.3).
	Decay float64
	// DefaultLatencyMs seeds every endpoint's latency EWMA and anchors the
	// latency penalty. 0 selects the default (100).
	DefaultLatencyMs float64
	// StickyTTLMs is the lifetime of a client binding, refreshed on every
	// successful reuse. 0 selects the default (300000).
	StickyTTLMs int
	// DefaultLeaseTTLMs applies when AcquireOptions.TTLMs == 0. 0 means
	// such leases never expire.
	DefaultLeaseTTLMs int
}
