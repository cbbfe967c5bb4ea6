package handlers

import (
	"mypool/domain"
	"mypool/service"
)

// toEndpointStatus converts a domain snapshot to API response. Zero times
// (no failure yet, no cooldown window) are omitted rather than sent as
// 0001-01-01 timestamps.
func toEndpointStatus(s domain.Snapshot) EndpointStatus {
	out := EndpointStatus{
		EndpointId:        s.Config.EndpointID,
		Address:           s.Config.Address,
		Weight:            s.Config.Weight,
		MaxSessions:       s.Config.MaxSessions,
		WarmupSamples:     s.Config.WarmupSamples,
		FailureThreshold:  s.Config.FailureThreshold,
		RecoveryThreshold: s.Config.RecoveryThreshold,
		CooldownMs:        s.Config.CooldownMs,
		Healthy:           s.Healthy,
		SuccessEwma:       s.SuccessEWMA,
		LatencyEwmaMs:     s.LatencyEWMAMs,
		Observations:      s.Observations,
		ActiveSessions:    s.ActiveSessions,
		Score:             s.Score,
	}
	if s.Config.Metadata != nil {
		out.Metadata = service.Ptr(s.Config.Metadata)
	}
	if !s.LastFailureAt.IsZero() {
		out.LastFailureAt = service.Ptr(s.LastFailureAt)
	}
	if !s.CooldownUntil.IsZero() {
		out.CooldownUntil = service.Ptr(s.CooldownUntil)
	}

	return out
}

// toEndpointsResponse converts snapshots to API response, preserving order.
func toEndpointsResponse(snapshots []domain.Snapshot) EndpointsResponse {
	out := make([]EndpointStatus, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toEndpointStatus(s))
	}
	return EndpointsResponse{Endpoints: out}
}

// toLeaseInfo converts a domain lease to API response.
func toLeaseInfo(lease domain.Lease) LeaseInfo {
	out := LeaseInfo{
		SessionId:  lease.SessionID,
		EndpointId: lease.EndpointID,
		Address:    lease.Address,
		AcquiredAt: lease.AcquiredAt,
	}
	if lease.Metadata != nil {
		out.Metadata = service.Ptr(lease.Metadata)
	}
	if lease.ClientID != "" {
		out.ClientId = service.Ptr(lease.ClientID)
	}
	if !lease.ExpiresAt.IsZero() {
		out.ExpiresAt = service.Ptr(lease.ExpiresAt)
	}

	return out
}
