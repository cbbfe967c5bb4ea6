package service

import (
	"time"

	"mypool/domain"
)

const (
	// unhealthyPenalty attenuates the score of an endpoint whose hysteresis state is
	// unhealthy. Never zero: a fully degraded pool can still serve best-effort traffic.
	unhealthyPenalty = 0.3
	// cooldownPenalty attenuates a healthy endpoint that is still inside its
	// post-failure cooldown window.
	cooldownPenalty = 0.5
	// successFactorFloor keeps the post-warm-up success factor above zero so a string
	// of failures cannot lock an endpoint out of selection entirely.
	successFactorFloor = 0.05
	// warmupStartFactor is the success factor assigned before the first observation;
	// it ramps linearly to 1.0 over the warm-up window.
	warmupStartFactor = 0.4
)

// effectiveSuccessFactor returns the success term of the score. While the endpoint is
// still inside its warm-up window the statistically thin EWMA is ignored and the factor
// ramps linearly from warmupStartFactor to 1.0 with observation progress; once warm-up
// completes the raw EWMA is used, floored at successFactorFloor.
func effectiveSuccessFactor(h healthState, cfg domain.EndpointConfig) float64 {
	if cfg.WarmupSamples > 0 && h.observations < cfg.WarmupSamples {
		progress := float64(h.observations) / float64(cfg.WarmupSamples)
		return warmupStartFactor + (1-warmupStartFactor)*progress
	}
	if h.successEWMA < successFactorFloor {
		return successFactorFloor
	}
	return h.successEWMA
}

// scoreEndpoint ranks one endpoint for selection:
//
//	weight × healthFactor × successFactor × latencyPenalty × sessionPenalty
//
// healthFactor is 1.0 for a healthy endpoint outside cooldown, unhealthyPenalty when
// unhealthy and cooldownPenalty when healthy but cooling. latencyPenalty is
// 1/(1+latencyEWMA/defaultLatency), sessionPenalty is 1/(1+activeSessions); both shrink
// continuously rather than cutting off. The result is strictly positive whenever the
// weight is, so ranking always has a winner.
//
// Called from endpointPool.selectBestLocked and endpointPool.snapshotLocked.
func scoreEndpoint(cfg domain.EndpointConfig, h healthState, now time.Time, defaultLatencyMs float64) float64 {
	healthFactor := 1.0
	switch {
	case !h.healthy:
		healthFactor = unhealthyPenalty
	case h.inCooldown(now):
		healthFactor = cooldownPenalty
	}

	latencyPenalty := 1 / (1 + h.latencyEWMAMs/defaultLatencyMs)
	sessionPenalty := 1 / (1 + float64(h.activeSessions))

	return cfg.Weight * healthFactor * effectiveSuccessFactor(h, cfg) * latencyPenalty * sessionPenalty
}
