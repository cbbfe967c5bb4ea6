package domain

import (
	"maps"
	"time"
)

// EndpointConfig is the registered configuration of one pool endpoint.
// Identifier and address are required; Weight must be positive. MaxSessions
// bounds concurrent leases (0 = unbounded). Thresholds drive the health
// hysteresis: the endpoint turns unhealthy when the success EWMA falls to or
// below FailureThreshold and recovers at or above RecoveryThreshold.
type EndpointConfig struct {
	EndpointID        string
	Address           string
	Weight            float64
	MaxSessions       int // 0 = unbounded
	WarmupSamples     int
	FailureThreshold  float64
	RecoveryThreshold float64
	CooldownMs        int
	Metadata          map[string]string
}

// Clone returns a copy with its own metadata map.
func (c EndpointConfig) Clone() EndpointConfig {
	out := c
	out.Metadata = maps.Clone(c.Metadata)
	return out
}

// Equal reports whether both configs are identical, metadata included.
// Used by the catalog syncer to avoid re-registering unchanged endpoints.
func (c EndpointConfig) Equal(other EndpointConfig) bool {
	return c.EndpointID == other.EndpointID &&
		c.Address == other.Address &&
		c.Weight == other.Weight &&
		c.MaxSessions == other.MaxSessions &&
		c.WarmupSamples == other.WarmupSamples &&
		c.FailureThreshold == other.FailureThreshold &&
		c.RecoveryThreshold == other.RecoveryThreshold &&
		c.CooldownMs == other.CooldownMs &&
		maps.Equal(c.Metadata, other.Metadata)
}

// Snapshot is a read-only point-in-time projection of one endpoint's config
// and health state. Returned values are copies; mutating them has no effect
// on the pool.
type Snapshot struct {
	Config         EndpointConfig
	Healthy        bool
	SuccessEWMA    float64
	LatencyEWMAMs  float64
	Observations   int
	ActiveSessions int
	LastFailureAt  time.Time // zero if no failure recorded
	CooldownUntil  time.Time // zero if no cooldown window is set
	Score          float64
}
