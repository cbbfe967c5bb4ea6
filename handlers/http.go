// Package handlers contains http handlers for mypool.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/mypool.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/mypool.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
	"mypool/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	pool    interfaces.EndpointPool
	catalog interfaces.Cache[domain.EndpointConfig] // nil when no shared catalog is configured
	logger  log.Logger
}

// NewHTTPServer creates a new HTTPServer. catalog may be nil; registrations
// and removals are then not mirrored to the shared catalog.
func NewHTTPServer(pool interfaces.EndpointPool, catalog interfaces.Cache[domain.EndpointConfig], logger log.Logger) *HTTPServer {
	helpers.NilPanic(pool, "handlers.http.go: pool is required")
	helpers.NilPanic(logger, "handlers.http.go: logger is required")

	return &HTTPServer{
		pool:    pool,
		catalog: catalog,
		logger:  log.WithPrefix(logger, "component", "HTTPServer"),
	}
}

// GetEndpoints (GET /v1/endpoints) returns snapshots of all endpoints in registration order.
func (h *HTTPServer) GetEndpoints(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toEndpointsResponse(h.pool.DescribeAll()))
}

// RegisterEndpoint (POST /v1/endpoints) registers or replaces an endpoint and returns its
// fresh snapshot. Returns 200 on success, 400 on parse/validation error. The shared
// catalog mirror is best-effort: a failed write is logged and does not fail the request.
func (h *HTTPServer) RegisterEndpoint(ectx echo.Context) error {
	var req EndpointSpec
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	config, err := fromEndpointSpec(req)
	if err != nil {
		return fmt.Errorf("registerEndpoint failed to convert request to config, err: %w", err)
	}

	registered, err := h.pool.RegisterEndpoint(config)
	if err != nil {
		return fmt.Errorf("registerEndpoint failed to register endpoint, err: %w", err)
	}

	if h.catalog != nil {
		ctx := ectx.Request().Context()
		if err := h.catalog.WriteValue(ctx, registered.EndpointID, registered, 0); err != nil {
			_ = log.With(h.logger, "err", err).Log("msg", "failed to mirror endpoint to catalog", "endpoint_id", registered.EndpointID)
		}
	}

	snapshot, err := h.pool.Snapshot(registered.EndpointID)
	if err != nil {
		return fmt.Errorf("registerEndpoint failed to snapshot endpoint, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toEndpointStatus(snapshot))
}

// RemoveEndpoint (DELETE /v1/endpoints/{endpoint_id}) removes the endpoint, its sessions
// and its sticky bindings. Unknown ids are a no-op, so the call is idempotent.
func (h *HTTPServer) RemoveEndpoint(ectx echo.Context, endpointId string) error {
	h.pool.RemoveEndpoint(endpointId)

	if h.catalog != nil {
		ctx := ectx.Request().Context()
		if err := h.catalog.DeleteValue(ctx, endpointId); err != nil {
			_ = log.With(h.logger, "err", err).Log("msg", "failed to delete endpoint from catalog", "endpoint_id", endpointId)
		}
	}

	return ectx.NoContent(http.StatusOK)
}

// GetEndpoint (GET /v1/endpoints/{endpoint_id}) returns one endpoint snapshot.
// Returns 200 on success, 404 when the endpoint is not registered.
func (h *HTTPServer) GetEndpoint(ectx echo.Context, endpointId string) error {
	snapshot, err := h.pool.Snapshot(endpointId)
	if err != nil {
		return fmt.Errorf("getEndpoint failed to snapshot endpoint, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toEndpointStatus(snapshot))
}

// AcquireLease (POST /v1/leases) picks the best available endpoint and mints a lease.
// Returns 200 with the lease, 400 on parse error, 503 when no endpoint qualifies.
func (h *HTTPServer) AcquireLease(ectx echo.Context) error {
	var req LeaseRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	lease, err := h.pool.Acquire(fromLeaseRequest(req))
	if err != nil {
		return fmt.Errorf("acquireLease failed to acquire lease, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toLeaseInfo(lease))
}

// ReleaseLease (DELETE /v1/leases/{session_id}) releases a session lease. Always
// returns 200; released=false reports an unknown or already-released session.
func (h *HTTPServer) ReleaseLease(ectx echo.Context, sessionId string) error {
	return ectx.JSON(http.StatusOK, ReleaseResponse{Released: h.pool.Release(sessionId)})
}

// RecordResult (POST /v1/results) feeds one call outcome into the endpoint's health
// state and optionally releases the session that produced it. Returns 200 on success,
// 400 on parse/validation error, 404 when the endpoint is not registered.
func (h *HTTPServer) RecordResult(ectx echo.Context) error {
	var req ResultRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.EndpointId == "" {
		return service.NewBadParameterError("endpoint_id is required", nil)
	}

	if err := h.pool.RecordResult(req.EndpointId, req.Success, req.LatencyMs, req.SessionId); err != nil {
		return fmt.Errorf("recordResult failed to record result, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}
