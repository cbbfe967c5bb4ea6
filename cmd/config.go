package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mypool/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envConfigPath = "CONFIG_PATH"
	envAdminToken = "ADMIN_TOKEN"
	envRedisAddr  = "REDIS_ADDR"
)

// Catalog source types accepted in the YAML catalog section.
const (
	catalogNone  = "none"
	catalogRedis = "redis"
	catalogHTTP  = "http"
)

// Config holds the full service configuration loaded by LoadConfig from environment variables and the YAML file.
// HTTPPort is the listening port (from SERVICE_PORT_HTTP); AdminToken guards the HTTP API when non-empty (from ADMIN_TOKEN);
// RedisAddr from REDIS_ADDR (required only when the catalog type is redis, otherwise optional and used for the registration
// mirror); Pool tuning, static Endpoints and the Catalog section come from YAML at CONFIG_PATH.
type Config struct {
	HTTPPort   int
	AdminToken string
	RedisAddr  string
	Pool       domain.PoolConfig
	Endpoints  []domain.EndpointConfig
	Catalog    CatalogConfig
}

// CatalogConfig selects where the catalog syncer reads endpoint configs from:
// none disables syncing, redis reads the shared Redis catalog, http polls an
// external catalog service at URL every RefreshInterval.
type CatalogConfig struct {
	Type            string
	URL             string
	RefreshInterval time.Duration
}

// yamlConfig is the root struct for YAML unmarshalling; contains pool, endpoints and catalog.
type yamlConfig struct {
	Pool      yamlPool       `yaml:"pool"`
	Endpoints []yamlEndpoint `yaml:"endpoints"`
	Catalog   yamlCatalog    `yaml:"catalog"`
}

// yamlPool holds pool-wide tuning; zero values select the pool defaults.
type yamlPool struct {
	Decay             float64 `yaml:"decay"`
	DefaultLatencyMs  float64 `yaml:"default_latency_ms"`
	StickyTTLMs       int     `yaml:"sticky_ttl_ms"`
	DefaultLeaseTTLMs int     `yaml:"default_lease_ttl_ms"`
}

// yamlEndpoint is one statically registered endpoint; mirrors domain.EndpointConfig.
type yamlEndpoint struct {
	EndpointID        string            `yaml:"endpoint_id"`
	Address           string            `yaml:"address"`
	Weight            float64           `yaml:"weight"`
	MaxSessions       int               `yaml:"max_sessions"`
	WarmupSamples     int               `yaml:"warmup_samples"`
	FailureThreshold  float64           `yaml:"failure_threshold"`
	RecoveryThreshold float64           `yaml:"recovery_threshold"`
	CooldownMs        int               `yaml:"cooldown_ms"`
	Metadata          map[string]string `yaml:"metadata"`
}

// yamlCatalog is the catalog section: type (none|redis|http), url (http) and refresh_interval_ms.
type yamlCatalog struct {
	Type              string `yaml:"type"`
	URL               string `yaml:"url"`
	RefreshIntervalMs int    `yaml:"refresh_interval_ms"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig (pool, endpoints, catalog).
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the service config from environment variables and YAML at CONFIG_PATH. Reads SERVICE_PORT_HTTP
// (required, 1-65535), CONFIG_PATH (required), ADMIN_TOKEN (optional API key for the HTTP API) and REDIS_ADDR
// (required when catalog.type is redis). The YAML catalog section is validated here (type enum, url for http,
// positive refresh interval); pool tuning and endpoint configs are passed through raw — range validation is the
// pool's job (NewEndpointPool, RegisterEndpoint) so invalid values fail the same way from every source.
//
// Parameters: none (source — os.Getenv and file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) on invalid port, missing CONFIG_PATH, YAML load/parse error,
// unknown catalog type, missing http catalog url, non-positive refresh interval or missing REDIS_ADDR.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	endpoints := make([]domain.EndpointConfig, 0, len(raw.Endpoints))
	for _, endpoint := range raw.Endpoints {
		endpoints = append(endpoints, domain.EndpointConfig{
			EndpointID:        endpoint.EndpointID,
			Address:           endpoint.Address,
			Weight:            endpoint.Weight,
			MaxSessions:       endpoint.MaxSessions,
			WarmupSamples:     endpoint.WarmupSamples,
			FailureThreshold:  endpoint.FailureThreshold,
			RecoveryThreshold: endpoint.RecoveryThreshold,
			CooldownMs:        endpoint.CooldownMs,
			Metadata:          endpoint.Metadata,
		})
	}

	catalog := CatalogConfig{Type: catalogNone}
	switch strings.TrimSpace(raw.Catalog.Type) {
	case "", catalogNone:
	case catalogRedis:
		catalog.Type = catalogRedis
	case catalogHTTP:
		catalog.Type = catalogHTTP
		catalog.URL = strings.TrimSpace(raw.Catalog.URL)
		if catalog.URL == "" {
			return nil, fmt.Errorf("catalog: url is required for http catalog")
		}
	default:
		return nil, fmt.Errorf("catalog: type must be none|redis|http, got %q", raw.Catalog.Type)
	}
	if catalog.Type != catalogNone {
		if raw.Catalog.RefreshIntervalMs <= 0 {
			return nil, fmt.Errorf("catalog: refresh_interval_ms must be positive")
		}
		catalog.RefreshInterval = time.Duration(raw.Catalog.RefreshIntervalMs) * time.Millisecond
	}

	redisAddr := strings.TrimSpace(os.Getenv(envRedisAddr))
	if catalog.Type == catalogRedis && redisAddr == "" {
		return nil, fmt.Errorf("%s is required when the catalog type is redis", envRedisAddr)
	}

	return &Config{
		HTTPPort:   httpPort,
		AdminToken: strings.TrimSpace(os.Getenv(envAdminToken)),
		RedisAddr:  redisAddr,
		Pool: domain.PoolConfig{
			Decay:             raw.Pool.Decay,
			DefaultLatencyMs:  raw.Pool.DefaultLatencyMs,
			StickyTTLMs:       raw.Pool.StickyTTLMs,
			DefaultLeaseTTLMs: raw.Pool.DefaultLeaseTTLMs,
		},
		Endpoints: endpoints,
		Catalog:   catalog,
	}, nil
}
