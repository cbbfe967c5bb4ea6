package interfaces

import (
	"mypool/domain"
)

// EndpointPool tracks a set of interchangeable backend endpoints, scores
// their health from outcomes reported by the caller, and hands out
// time-bounded session leases bounded by per-endpoint capacity.
//
// RegisterEndpoint/RemoveEndpoint maintain the endpoint set;
// Acquire picks the best endpoint (sticky binding first when a client id is
// given, then highest score) and mints a lease; Release returns a lease;
// RecordResult feeds an observed outcome back into the health state;
// Snapshot/DescribeAll expose read-only projections.
//
// The pool never performs network I/O: callers execute the real call with
// the returned lease outside the pool and report the result afterwards.
//
// Implemented by service.endpointPool. Consumed by handlers.HTTPServer and
// service.CatalogSyncer.
//
//go:generate moq -stub -out mock/endpoint_pool.go -pkg mock . EndpointPool
type EndpointPool interface {
	// RegisterEndpoint validates, normalizes and stores the config. Re-registering an existing id replaces its config, resets its health state and purges its sessions and sticky bindings.
	// Parameter config — endpoint configuration; id/address are trimmed, thresholds clamped to [0,1], recovery raised to failure when lower.
	// Returns: (normalized config, nil) on success; (zero, configuration_error) on empty id/address, non-positive weight, negative capacity/warm-up/cooldown.
	// Called from handlers.HTTPServer.RegisterEndpoint, service.CatalogSyncer and cmd/main (static endpoints).
	RegisterEndpoint(config domain.EndpointConfig) (domain.EndpointConfig, error)

	// RemoveEndpoint deletes the endpoint, its health state, all its sessions (freeing capacity bookkeeping) and all sticky bindings pointing to it. Unknown id is a silent no-op.
	// Parameter endpointID — endpoint to remove.
	// Called from handlers.HTTPServer.RemoveEndpoint and service.CatalogSyncer when an endpoint leaves the catalog.
	RemoveEndpoint(endpointID string)

	// Acquire sweeps expired sessions and bindings, then picks an endpoint: the sticky binding when opts.ClientID is set and the bound endpoint still has capacity; otherwise the highest-scoring endpoint that is healthy and not cooling down, falling back to unhealthy endpoints unless opts.StrictHealthy. Ties go to the earliest-registered endpoint.
	// Parameter opts — client id (optional), lease TTL override, strict-healthy flag.
	// Returns: (lease, nil) on success; (zero, not_available) when no endpoint passes, even after fallback.
	// Called from handlers.HTTPServer.AcquireLease and by embedding processes.
	Acquire(opts domain.AcquireOptions) (domain.Lease, error)

	// Release removes the session and decrements the owning endpoint's active count exactly once.
	// Parameter sessionID — id minted by Acquire ("endpointID:sequence").
	// Returns: true when a live session was removed; false for unknown or already-released ids (no error — racing timeout vs explicit release is benign).
	// Called from handlers.HTTPServer.ReleaseLease and by embedding processes.
	Release(sessionID string) bool

	// RecordResult updates the endpoint's health state with one observed outcome and optionally releases the session that produced it.
	// Parameters: endpointID — endpoint the call was made against; success — outcome; latencyMs — optional latency sample; sessionID — optional session to release after recording.
	// Returns: nil on success; unknown_endpoint when the id is not registered.
	// Called from handlers.HTTPServer.RecordResult and by embedding processes after each real call.
	RecordResult(endpointID string, success bool, latencyMs *float64, sessionID *string) error

	// Snapshot returns a read-only projection of one endpoint's config and health. Never mutates state.
	// Parameter endpointID — endpoint to describe.
	// Returns: (snapshot, nil) on success; (zero, unknown_endpoint) when not registered.
	// Called from handlers.HTTPServer.GetEndpoint.
	Snapshot(endpointID string) (domain.Snapshot, error)

	// DescribeAll returns snapshots for every endpoint in registration order. Never mutates state.
	// Returns: slice of snapshots (empty when the pool is empty, never nil).
	// Called from handlers.HTTPServer.GetEndpoints and service.CatalogSyncer (diffing).
	DescribeAll() []domain.Snapshot
}
