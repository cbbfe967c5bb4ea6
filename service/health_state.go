package service

import (
	"time"

	"mypool/domain"
)

// healthState is the mutable health record of one endpoint, guarded by the pool mutex.
// It starts optimistic (healthy, successEWMA 1.0, latency at the pool default) and is
// updated by applyResult on every reported outcome. The healthy flag follows a
// two-threshold hysteresis: it drops only when the success EWMA falls to or below the
// endpoint's failure threshold and rises again only at or above the recovery threshold,
// so values in between never flip the state. Lifetime = the endpoint's registration
// lifetime: re-registering or removing the endpoint discards the record.
type healthState struct {
	healthy        bool
	successEWMA    float64
	latencyEWMAMs  float64
	latencySeeded  bool
	observations   int
	lastFailureAt  time.Time
	cooldownUntil  time.Time
	activeSessions int
}

// newHealthState returns the initial record for a freshly registered endpoint: healthy,
// successEWMA 1.0, latency EWMA at defaultLatencyMs, no observations, no sessions.
//
// Parameter defaultLatencyMs — pool-level latency seed (also the anchor of the latency penalty).
//
// Called from endpointPool.RegisterEndpoint.
func newHealthState(defaultLatencyMs float64) healthState {
	return healthState{
		healthy:       true,
		successEWMA:   1.0,
		latencyEWMAMs: defaultLatencyMs,
	}
}

// applyResult folds one observed outcome into the record: increments observations,
// blends the success EWMA (the very first observation seeds it directly instead of
// blending with the optimistic 1.0), blends the latency EWMA when a sample is supplied
// (first sample seeds directly, replacing the configured default), stamps
// lastFailureAt/cooldownUntil on failure and evaluates the hysteresis transitions.
//
// Parameters: now — observation time; success — outcome; latencyMs — optional latency
// sample in milliseconds; decay — pool EWMA factor in (0,1]; cfg — the endpoint's
// config (thresholds, cooldown).
//
// Called from endpointPool.RecordResult under the pool write lock.
func (h *healthState) applyResult(now time.Time, success bool, latencyMs *float64, decay float64, cfg domain.EndpointConfig) {
	h.observations++

	outcome := 0.0
	if success {
		outcome = 1.0
	}
	if h.observations == 1 {
		h.successEWMA = outcome
	} else {
		h.successEWMA = decay*outcome + (1-decay)*h.successEWMA
	}

	if latencyMs != nil {
		if !h.latencySeeded {
			h.latencyEWMAMs = *latencyMs
			h.latencySeeded = true
		} else {
			h.latencyEWMAMs = decay*(*latencyMs) + (1-decay)*h.latencyEWMAMs
		}
	}

	if success {
		if h.successEWMA >= cfg.RecoveryThreshold {
			h.healthy = true
		}
		if !h.cooldownUntil.IsZero() && !now.Before(h.cooldownUntil) {
			h.cooldownUntil = time.Time{}
		}
		return
	}

	h.lastFailureAt = now
	if cfg.CooldownMs > 0 {
		h.cooldownUntil = now.Add(time.Duration(cfg.CooldownMs) * time.Millisecond)
	}
	if h.successEWMA <= cfg.FailureThreshold {
		h.healthy = false
	}
}

// inCooldown reports whether now is inside the endpoint's cooldown window.
// A zero cooldownUntil means no window is set.
func (h *healthState) inCooldown(now time.Time) bool {
	return !h.cooldownUntil.IsZero() && now.Before(h.cooldownUntil)
}
