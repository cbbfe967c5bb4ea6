package interfaces

import "time"

// TimeProvider supplies the current time for lease expiry, cooldown windows
// and sticky-binding TTLs. Injected so tests can use a fixed clock instead
// of time.Now().
//
// Used by service.endpointPool everywhere a timestamp is read or compared.
// Constructed in cmd/main as service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed time for deterministic expiry checks).
	// Parameters: none.
	// Returns: time.Time — "now" for lease/binding expiry comparison and cooldown checks.
	// Called from service.endpointPool on every Acquire/RecordResult/Snapshot.
	Now() time.Time
}
