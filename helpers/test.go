package helpers

import (
	"time"
)

// TestNow returns a fixed time (2026-03-05 09:30:00 UTC) for deterministic tests (lease expiry, sticky TTLs, cooldown windows).
//
// Parameters: none.
//
// Returns: time.Time in UTC.
//
// Called from tests (e.g. service/endpoint_pool_test, service/health_state_test) when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)
}
