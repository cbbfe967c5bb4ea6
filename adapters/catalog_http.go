package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
)

// NewCatalogHTTP creates an interfaces.CatalogSource that lists endpoint configs from a
// remote catalog over HTTP: GET baseURL/v1/endpoints. Panics on empty baseURL or nil
// client.
//
// Parameters: baseURL — catalog base URL (e.g. http://catalog:8080), no trailing slash;
// client — HTTP client (timeout recommended; main uses 10s).
//
// Returns: interfaces.CatalogSource (*catalogHTTP).
//
// Called from cmd/main when CATALOG_URL is configured.
func NewCatalogHTTP(baseURL string, client *http.Client) interfaces.CatalogSource {
	return &catalogHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.catalog_http.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.catalog_http.go: http client is required"),
	}
}

// catalogHTTP implements interfaces.CatalogSource. Used by service.CatalogSyncer to
// fetch the endpoint list on timer. Holds baseURL and http.Client.
type catalogHTTP struct {
	baseURL string
	client  *http.Client
}

// endpointsResponse is the JSON shape of GET /v1/endpoints: { "endpoints": [ endpointSpec ] }.
type endpointsResponse struct {
	Endpoints []endpointSpec `json:"endpoints"`
}

// endpointSpec is one element of the endpoints array in the catalog JSON.
type endpointSpec struct {
	EndpointID        string            `json:"endpoint_id"`
	Address           string            `json:"address"`
	Weight            float64           `json:"weight"`
	MaxSessions       int               `json:"max_sessions"`
	WarmupSamples     int               `json:"warmup_samples"`
	FailureThreshold  float64           `json:"failure_threshold"`
	RecoveryThreshold float64           `json:"recovery_threshold"`
	CooldownMs        int               `json:"cooldown_ms"`
	Metadata          map[string]string `json:"metadata"`
}

// ListEndpoints performs GET baseURL/v1/endpoints with a 5s timeout on top of ctx. On
// 404 (catalog convention for an empty set) returns an empty slice; on 200 parses the
// JSON and maps to domain.EndpointConfig.
//
// Parameter ctx — caller context; the request also carries the adapter's own 5s cap.
//
// Returns: ([]domain.EndpointConfig, nil) on 200 (possibly empty) or 404 (empty);
// (nil, error) on other status, network error or JSON parse error (e.g. missing
// "endpoints" field).
//
// Called from service.CatalogSyncer.sync (on timer and at startup).
func (c *catalogHTTP) ListEndpoints(ctx context.Context) ([]domain.EndpointConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	reqURL := c.baseURL + "/v1/endpoints"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return []domain.EndpointConfig{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw endpointsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw.Endpoints == nil {
		return nil, fmt.Errorf("catalog response missing endpoints field")
	}
	out := make([]domain.EndpointConfig, 0, len(raw.Endpoints))
	for _, r := range raw.Endpoints {
		out = append(out, domain.EndpointConfig{
			EndpointID:        r.EndpointID,
			Address:           r.Address,
			Weight:            r.Weight,
			MaxSessions:       r.MaxSessions,
			WarmupSamples:     r.WarmupSamples,
			FailureThreshold:  r.FailureThreshold,
			RecoveryThreshold: r.RecoveryThreshold,
			CooldownMs:        r.CooldownMs,
			Metadata:          r.Metadata,
		})
	}
	return out, nil
}
