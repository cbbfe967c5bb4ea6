package handlers

import (
	"mypool/domain"
	"mypool/service"
)

// fromEndpointSpec converts EndpointSpec to domain.EndpointConfig.
// Returns service.BadParameterError on validation failure; range checks
// (positive weight, non-negative caps) are the pool's job.
func fromEndpointSpec(req EndpointSpec) (domain.EndpointConfig, error) {
	if req.EndpointId == "" {
		return domain.EndpointConfig{}, service.NewBadParameterError("endpoint_id is required", nil)
	}
	if req.Address == "" {
		return domain.EndpointConfig{}, service.NewBadParameterError("address is required", nil)
	}
	if req.Weight == 0 {
		return domain.EndpointConfig{}, service.NewBadParameterError("weight is required", nil)
	}

	config := domain.EndpointConfig{
		EndpointID:        req.EndpointId,
		Address:           req.Address,
		Weight:            req.Weight,
		MaxSessions:       service.Value(req.MaxSessions),
		WarmupSamples:     service.Value(req.WarmupSamples),
		FailureThreshold:  service.Value(req.FailureThreshold),
		RecoveryThreshold: service.Value(req.RecoveryThreshold),
		CooldownMs:        service.Value(req.CooldownMs),
	}
	if req.Metadata != nil {
		config.Metadata = *req.Metadata
	}

	return config, nil
}

// fromLeaseRequest converts LeaseRequest to domain.AcquireOptions.
// All fields are optional; absent values select the pool defaults.
func fromLeaseRequest(req LeaseRequest) domain.AcquireOptions {
	return domain.AcquireOptions{
		ClientID:      service.Value(req.ClientId),
		TTLMs:         service.Value(req.TtlMs),
		StrictHealthy: service.Value(req.StrictHealthy),
	}
}
