package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-kit/log/level"

	"mypool/domain"
)

// clamp01 pins v to the [0,1] interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeEndpointConfig trims identifiers, clamps thresholds to [0,1], raises the
// recovery threshold to the failure threshold when it was configured lower (documented
// fixup, not a rejection) and validates the rest. Metadata is cloned so later caller
// mutation cannot reach pool state.
//
// Parameter config — raw configuration as supplied by the caller.
//
// Returns:
//  1. the normalized configuration
//  2. configuration_error on empty id/address, non-positive or NaN weight, negative
//     capacity, warm-up count or cooldown
//
// Called from endpointPool.RegisterEndpoint.
func normalizeEndpointConfig(config domain.EndpointConfig) (domain.EndpointConfig, error) {
	normalized := config.Clone()
	normalized.EndpointID = strings.TrimSpace(normalized.EndpointID)
	normalized.Address = strings.TrimSpace(normalized.Address)

	if normalized.EndpointID == "" {
		return domain.EndpointConfig{}, NewConfigurationError("endpoint id must not be empty", nil)
	}
	if normalized.Address == "" {
		return domain.EndpointConfig{}, NewConfigurationError(fmt.Sprintf("endpoint %s: address must not be empty", normalized.EndpointID), nil)
	}
	if math.IsNaN(normalized.Weight) || normalized.Weight <= 0 {
		return domain.EndpointConfig{}, NewConfigurationError(fmt.Sprintf("endpoint %s: weight must be positive", normalized.EndpointID), nil)
	}
	if normalized.MaxSessions < 0 {
		return domain.EndpointConfig{}, NewConfigurationError(fmt.Sprintf("endpoint %s: max sessions must not be negative", normalized.EndpointID), nil)
	}
	if normalized.WarmupSamples < 0 {
		return domain.EndpointConfig{}, NewConfigurationError(fmt.Sprintf("endpoint %s: warmup samples must not be negative", normalized.EndpointID), nil)
	}
	if normalized.CooldownMs < 0 {
		return domain.EndpointConfig{}, NewConfigurationError(fmt.Sprintf("endpoint %s: cooldown must not be negative", normalized.EndpointID), nil)
	}

	normalized.FailureThreshold = clamp01(normalized.FailureThreshold)
	normalized.RecoveryThreshold = clamp01(normalized.RecoveryThreshold)
	if normalized.RecoveryThreshold < normalized.FailureThreshold {
		normalized.RecoveryThreshold = normalized.FailureThreshold
	}

	return normalized, nil
}

// RegisterEndpoint implements interfaces.EndpointPool. Replacing an existing id keeps
// its registration-order slot but resets health and purges its sessions and bindings,
// so no lease can reference the superseded config.
func (p *endpointPool) RegisterEndpoint(config domain.EndpointConfig) (domain.EndpointConfig, error) {
	normalized, err := normalizeEndpointConfig(config)
	if err != nil {
		return domain.EndpointConfig{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	_, replacing := p.endpoints[normalized.EndpointID]
	if replacing {
		p.purgeEndpointLocked(normalized.EndpointID)
	} else {
		p.order = append(p.order, normalized.EndpointID)
	}

	p.endpoints[normalized.EndpointID] = &endpointEntry{
		config: normalized,
		health: newHealthState(p.config.DefaultLatencyMs),
	}

	level.Info(p.logger).Log(
		"msg", "endpoint registered",
		"endpoint_id", normalized.EndpointID,
		"address", normalized.Address,
		"replaced", replacing,
	)

	return normalized.Clone(), nil
}

// RemoveEndpoint implements interfaces.EndpointPool. Removing an unknown id is a
// silent no-op; the per-endpoint session sequence counter is kept so ids stay unique
// across a remove/re-register cycle.
func (p *endpointPool) RemoveEndpoint(endpointID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.endpoints[endpointID]; !ok {
		return
	}

	p.purgeEndpointLocked(endpointID)
	delete(p.endpoints, endpointID)
	for i, id := range p.order {
		if id == endpointID {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}

	level.Info(p.logger).Log("msg", "endpoint removed", "endpoint_id", endpointID)
}

// purgeEndpointLocked drops every session and sticky binding referencing endpointID.
// Capacity bookkeeping dies with the health record, so sessions are deleted without
// decrementing. Caller must hold the write lock.
func (p *endpointPool) purgeEndpointLocked(endpointID string) {
	for sessionID, s := range p.sessions {
		if s.endpointID == endpointID {
			delete(p.sessions, sessionID)
		}
	}
	for clientID, b := range p.bindings {
		if b.endpointID == endpointID {
			delete(p.bindings, clientID)
		}
	}
}
