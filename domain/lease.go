package domain

import (
	"maps"
	"time"
)

// Lease is a time-bounded claim on one unit of an endpoint's concurrency
// budget. SessionID has the form "endpointID:sequence". Address and Metadata
// carry what the caller's own network layer needs to perform the real call;
// the pool itself never dials anything.
type Lease struct {
	SessionID  string
	EndpointID string
	Address    string
	Metadata   map[string]string
	ClientID   string    // empty when acquired without affinity
	AcquiredAt time.Time
	ExpiresAt  time.Time // zero = never expires
}

// Clone returns a copy with its own metadata map.
func (l Lease) Clone() Lease {
	out := l
	out.Metadata = maps.Clone(l.Metadata)
	return out
}

// AcquireOptions controls endpoint selection for one Acquire call.
type AcquireOptions struct {
	// ClientID, when non-empty, pins repeat calls to the endpoint chosen the
	// first time, for as long as the sticky binding lives and the endpoint
	// has capacity.
	ClientID string
	// TTLMs bounds the lease lifetime: 0 applies the pool default, negative
	// means the lease never expires.
	TTLMs int
	// StrictHealthy fails the acquire instead of falling back to unhealthy
	// or cooling-down endpoints when no healthy endpoint qualifies.
	StrictHealthy bool
}
