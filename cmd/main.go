package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mypool/adapters"
	"mypool/adapters/myredis"
	"mypool/domain"
	"mypool/handlers"
	"mypool/interfaces"
	"mypool/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyPool service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"catalog_type", config.Catalog.Type,
		"static_endpoints", len(config.Endpoints),
	)

	// Create the pool and register static endpoints
	timeProvider := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
	pool, err := service.NewEndpointPool(config.Pool, timeProvider, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create endpoint pool", "err", err)
		os.Exit(1)
	}
	for _, endpoint := range config.Endpoints {
		if _, err := pool.RegisterEndpoint(endpoint); err != nil {
			level.Error(logger).Log("msg", "Failed to register static endpoint", "endpoint_id", endpoint.EndpointID, "err", err)
			os.Exit(1)
		}
	}

	// Shared Redis catalog: mirrors admin registrations and, when the catalog
	// type is redis, feeds the syncer.
	var catalogCache interfaces.Cache[domain.EndpointConfig]
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		catalogCache = myredis.NewCache[domain.EndpointConfig](redisClient, "endpoint")
	}

	// Catalog syncer keeps the pool aligned with the configured source
	var catalogSource interfaces.CatalogSource
	switch config.Catalog.Type {
	case catalogRedis:
		catalogSource = adapters.NewCatalogRedis(catalogCache)
	case catalogHTTP:
		catalogSource = adapters.NewCatalogHTTP(config.Catalog.URL, &http.Client{Timeout: 10 * time.Second})
	}
	if catalogSource != nil {
		syncer := service.NewCatalogSyncer(catalogSource, pool, config.Catalog.RefreshInterval, logger)
		defer syncer.Stop()
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		if config.AdminToken != "" {
			e.Use(middleware.KeyAuth(func(key string, c echo.Context) (bool, error) {
				return key == config.AdminToken, nil
			}))
		}
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(pool, catalogCache, logger))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
