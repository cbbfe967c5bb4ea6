package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"
	"mypool/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPool builds a pool on a mutable test clock. Tests advance time by
// reassigning *clock.
func newTestPool(t *testing.T, config domain.PoolConfig, clock *time.Time) interfaces.EndpointPool {
	t.Helper()

	timeProvider := &mock.TimeProviderMock{
		NowFunc: func() time.Time { return *clock },
	}
	pool, err := NewEndpointPool(config, timeProvider, log.NewNopLogger())
	require.NoError(t, err)
	return pool
}

func testEndpoint(endpointID string, weight float64) domain.EndpointConfig {
	return domain.EndpointConfig{
		EndpointID: endpointID,
		Address:    endpointID + ".internal:8080",
		Weight:     weight,
	}
}

func TestNewEndpointPool(t *testing.T) {
	t.Run("nil_time_provider_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.endpoint_pool.go: timeProvider is required", func() {
			NewEndpointPool(domain.PoolConfig{}, nil, log.NewNopLogger())
		})
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.endpoint_pool.go: logger is required", func() {
			NewEndpointPool(domain.PoolConfig{}, &mock.TimeProviderMock{}, nil)
		})
	})

	t.Run("rejects_out_of_range_tuning", func(t *testing.T) {
		tests := []struct {
			name   string
			config domain.PoolConfig
		}{
			{name: "decay_above_one", config: domain.PoolConfig{Decay: 1.5}},
			{name: "negative_decay", config: domain.PoolConfig{Decay: -0.1}},
			{name: "negative_default_latency", config: domain.PoolConfig{DefaultLatencyMs: -1}},
			{name: "negative_sticky_ttl", config: domain.PoolConfig{StickyTTLMs: -1}},
			{name: "negative_default_lease_ttl", config: domain.PoolConfig{DefaultLeaseTTLMs: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewEndpointPool(tt.config, &mock.TimeProviderMock{}, log.NewNopLogger())
				assert.True(t, IsConfigurationError(err))
			})
		}
	})

	t.Run("zero_config_hydrates_defaults", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, 100.0, snapshot.LatencyEWMAMs)
	})
}

func TestEndpointPoolRegisterEndpoint(t *testing.T) {
	t.Run("normalizes_and_round_trips", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		registered, err := pool.RegisterEndpoint(domain.EndpointConfig{
			EndpointID:        "  a  ",
			Address:           " 10.0.0.1:8080 ",
			Weight:            2,
			FailureThreshold:  1.5,
			RecoveryThreshold: -0.2,
			Metadata:          map[string]string{"region": "eu-west-1"},
		})
		require.NoError(t, err)

		assert.Equal(t, "a", registered.EndpointID)
		assert.Equal(t, "10.0.0.1:8080", registered.Address)
		assert.Equal(t, 1.0, registered.FailureThreshold, "clamped into [0,1]")
		assert.Equal(t, 1.0, registered.RecoveryThreshold, "raised to the failure threshold")

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, registered, snapshot.Config)
		assert.True(t, snapshot.Healthy)
		assert.Equal(t, 1.0, snapshot.SuccessEWMA)
	})

	t.Run("rejects_invalid_configs", func(t *testing.T) {
		tests := []struct {
			name   string
			config domain.EndpointConfig
		}{
			{name: "empty_id", config: domain.EndpointConfig{EndpointID: "  ", Address: "x:1", Weight: 1}},
			{name: "empty_address", config: domain.EndpointConfig{EndpointID: "a", Address: " ", Weight: 1}},
			{name: "zero_weight", config: domain.EndpointConfig{EndpointID: "a", Address: "x:1", Weight: 0}},
			{name: "negative_weight", config: domain.EndpointConfig{EndpointID: "a", Address: "x:1", Weight: -1}},
			{name: "negative_max_sessions", config: domain.EndpointConfig{EndpointID: "a", Address: "x:1", Weight: 1, MaxSessions: -1}},
			{name: "negative_warmup", config: domain.EndpointConfig{EndpointID: "a", Address: "x:1", Weight: 1, WarmupSamples: -1}},
			{name: "negative_cooldown", config: domain.EndpointConfig{EndpointID: "a", Address: "x:1", Weight: 1, CooldownMs: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clock := helpers.TestNow()
				pool := newTestPool(t, domain.PoolConfig{}, &clock)

				_, err := pool.RegisterEndpoint(tt.config)
				assert.True(t, IsConfigurationError(err))
			})
		}
	})

	t.Run("replacing_resets_health_and_purges_sessions", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.NoError(t, pool.RecordResult("a", false, nil, nil))

		_, err = pool.RegisterEndpoint(testEndpoint("a", 3))
		require.NoError(t, err)

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, 3.0, snapshot.Config.Weight)
		assert.Equal(t, 1.0, snapshot.SuccessEWMA, "health record starts over")
		assert.Equal(t, 0, snapshot.Observations)
		assert.Equal(t, 0, snapshot.ActiveSessions, "stale sessions are purged")

		assert.False(t, pool.Release(lease.SessionID), "purged session cannot be released")
	})

	t.Run("replacing_keeps_registration_order", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		for _, endpointID := range []string{"a", "b", "c"} {
			_, err := pool.RegisterEndpoint(testEndpoint(endpointID, 1))
			require.NoError(t, err)
		}
		_, err := pool.RegisterEndpoint(testEndpoint("a", 2))
		require.NoError(t, err)

		snapshots := pool.DescribeAll()
		require.Len(t, snapshots, 3)
		assert.Equal(t, "a", snapshots[0].Config.EndpointID)
		assert.Equal(t, 2.0, snapshots[0].Config.Weight)
	})
}

func TestEndpointPoolRemoveEndpoint(t *testing.T) {
	t.Run("removes_endpoint_and_bindings", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 5))
		require.NoError(t, err)
		_, err = pool.RegisterEndpoint(testEndpoint("b", 1))
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.Equal(t, "a", lease.EndpointID)

		pool.RemoveEndpoint("a")

		_, err = pool.Snapshot("a")
		assert.True(t, IsUnknownEndpointError(err))
		assert.False(t, pool.Release(lease.SessionID))

		next, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "b", next.EndpointID, "binding to the removed endpoint is gone")
	})

	t.Run("unknown_id_is_a_no_op", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		pool.RemoveEndpoint("missing")
		assert.Empty(t, pool.DescribeAll())
	})

	t.Run("session_sequence_survives_re_register", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		first, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		second, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a:1", first.SessionID)
		assert.Equal(t, "a:2", second.SessionID)

		pool.RemoveEndpoint("a")
		_, err = pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		third, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a:3", third.SessionID, "ids are never reissued")
	})
}

func TestEndpointPoolAcquire(t *testing.T) {
	t.Run("empty_pool_is_not_available", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.Acquire(domain.AcquireOptions{})
		assert.True(t, IsNotAvailableError(err))
	})

	t.Run("higher_weight_wins_on_equal_health", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)
		_, err = pool.RegisterEndpoint(testEndpoint("b", 2))
		require.NoError(t, err)

		snapshots := pool.DescribeAll()
		require.Len(t, snapshots, 2)
		assert.Equal(t, 2*snapshots[0].Score, snapshots[1].Score)

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "b", lease.EndpointID)
	})

	t.Run("ties_go_to_the_earliest_registered", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)
		_, err = pool.RegisterEndpoint(testEndpoint("b", 1))
		require.NoError(t, err)

		first, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a", first.EndpointID)

		second, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "b", second.EndpointID, "the busy endpoint scores lower now")
	})

	t.Run("capacity_cap_blocks_until_release", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		cfg := testEndpoint("d", 1)
		cfg.MaxSessions = 1
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)

		_, err = pool.Acquire(domain.AcquireOptions{})
		assert.True(t, IsNotAvailableError(err))

		require.True(t, pool.Release(lease.SessionID))

		_, err = pool.Acquire(domain.AcquireOptions{})
		assert.NoError(t, err)
	})

	t.Run("expired_leases_are_swept_before_selection", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		cfg := testEndpoint("d", 1)
		cfg.MaxSessions = 1
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		stale, err := pool.Acquire(domain.AcquireOptions{TTLMs: 5000})
		require.NoError(t, err)
		assert.Equal(t, clock.Add(5*time.Second), stale.ExpiresAt)

		_, err = pool.Acquire(domain.AcquireOptions{})
		require.True(t, IsNotAvailableError(err))

		clock = clock.Add(5 * time.Second)

		fresh, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "d", fresh.EndpointID)
		assert.False(t, pool.Release(stale.SessionID), "swept lease is already gone")
	})

	t.Run("lease_ttl_defaults_and_overrides", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{DefaultLeaseTTLMs: 60000}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		byDefault, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, clock.Add(time.Minute), byDefault.ExpiresAt)

		unbounded, err := pool.Acquire(domain.AcquireOptions{TTLMs: -1})
		require.NoError(t, err)
		assert.True(t, unbounded.ExpiresAt.IsZero())
	})

	t.Run("lease_carries_address_and_metadata", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		cfg := testEndpoint("a", 1)
		cfg.Metadata = map[string]string{"region": "eu-west-1"}
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "a.internal:8080", lease.Address)
		assert.Equal(t, map[string]string{"region": "eu-west-1"}, lease.Metadata)
		assert.Equal(t, "client-1", lease.ClientID)
		assert.Equal(t, clock, lease.AcquiredAt)

		lease.Metadata["region"] = "mutated"
		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", snapshot.Config.Metadata["region"])
	})

	t.Run("falls_back_to_unhealthy_endpoints", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		cfg := testEndpoint("a", 1)
		cfg.FailureThreshold = 0.4
		cfg.RecoveryThreshold = 0.7
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)
		require.NoError(t, pool.RecordResult("a", false, nil, nil))

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		require.False(t, snapshot.Healthy)

		_, err = pool.Acquire(domain.AcquireOptions{StrictHealthy: true})
		assert.True(t, IsNotAvailableError(err))

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a", lease.EndpointID)
	})

	t.Run("cooling_endpoint_excluded_until_window_passes", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		cfg := testEndpoint("a", 1)
		cfg.FailureThreshold = 0.4
		cfg.RecoveryThreshold = 0.7
		cfg.CooldownMs = 5000
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		require.NoError(t, pool.RecordResult("a", true, nil, nil))
		require.NoError(t, pool.RecordResult("a", false, nil, nil))

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		require.True(t, snapshot.Healthy, "0.5 sits in the dead band")
		require.Equal(t, clock.Add(5*time.Second), snapshot.CooldownUntil)

		_, err = pool.Acquire(domain.AcquireOptions{StrictHealthy: true})
		assert.True(t, IsNotAvailableError(err))

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a", lease.EndpointID, "fallback still serves a cooling endpoint")

		clock = clock.Add(6 * time.Second)

		_, err = pool.Acquire(domain.AcquireOptions{StrictHealthy: true})
		assert.NoError(t, err)
	})
}

func TestEndpointPoolStickyAffinity(t *testing.T) {
	t.Run("client_stays_on_its_endpoint", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("e", 1))
		require.NoError(t, err)

		first, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.Equal(t, "e", first.EndpointID)

		_, err = pool.RegisterEndpoint(testEndpoint("f", 5))
		require.NoError(t, err)

		second, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "e", second.EndpointID, "binding outranks the higher score")

		other, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-2"})
		require.NoError(t, err)
		assert.Equal(t, "f", other.EndpointID)
	})

	t.Run("binding_survives_unhealthy_endpoint", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		cfg := testEndpoint("e", 1)
		cfg.FailureThreshold = 0.4
		cfg.RecoveryThreshold = 0.7
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)
		_, err = pool.RegisterEndpoint(testEndpoint("f", 5))
		require.NoError(t, err)

		first, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.Equal(t, "f", first.EndpointID)

		require.NoError(t, pool.RecordResult("f", false, nil, nil))

		second, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "f", second.EndpointID, "continuity tolerates degraded endpoints")
	})

	t.Run("capacity_breaks_the_binding", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		cfg := testEndpoint("e", 5)
		cfg.MaxSessions = 1
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)
		_, err = pool.RegisterEndpoint(testEndpoint("f", 1))
		require.NoError(t, err)

		first, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.Equal(t, "e", first.EndpointID)

		second, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "f", second.EndpointID, "the cap is never bypassed, binding moves on")

		third, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "f", third.EndpointID, "binding now points at the fallback choice")
	})

	t.Run("expired_binding_falls_back_to_scoring", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{StickyTTLMs: 1000}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("e", 1))
		require.NoError(t, err)

		_, err = pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)

		_, err = pool.RegisterEndpoint(testEndpoint("f", 5))
		require.NoError(t, err)

		clock = clock.Add(time.Second)

		lease, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "f", lease.EndpointID)
	})

	t.Run("reuse_refreshes_the_binding_ttl", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{StickyTTLMs: 1000}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("e", 1))
		require.NoError(t, err)
		_, err = pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)

		_, err = pool.RegisterEndpoint(testEndpoint("f", 5))
		require.NoError(t, err)

		clock = clock.Add(600 * time.Millisecond)
		lease, err := pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		require.Equal(t, "e", lease.EndpointID)

		clock = clock.Add(600 * time.Millisecond)
		lease, err = pool.Acquire(domain.AcquireOptions{ClientID: "client-1"})
		require.NoError(t, err)
		assert.Equal(t, "e", lease.EndpointID, "the reuse at 600ms restarted the 1s window")
	})
}

func TestEndpointPoolRelease(t *testing.T) {
	t.Run("release_is_idempotent", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		require.Equal(t, 1, snapshot.ActiveSessions)

		assert.True(t, pool.Release(lease.SessionID))
		assert.False(t, pool.Release(lease.SessionID))

		snapshot, err = pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.ActiveSessions, "count decrements exactly once")
	})

	t.Run("unknown_session_returns_false", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		assert.False(t, pool.Release("a:1"))
	})

	t.Run("expired_but_unswept_session_still_releases", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{TTLMs: 1000})
		require.NoError(t, err)

		clock = clock.Add(2 * time.Second)

		assert.True(t, pool.Release(lease.SessionID), "expiry only takes effect when a sweep runs")
	})
}

func TestEndpointPoolRecordResult(t *testing.T) {
	t.Run("unknown_endpoint_errors", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		err := pool.RecordResult("unknown-id", true, nil, nil)
		assert.True(t, IsUnknownEndpointError(err))
	})

	t.Run("hysteresis_round_trip", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		cfg := testEndpoint("c", 1)
		cfg.FailureThreshold = 0.4
		cfg.RecoveryThreshold = 0.7
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		for i := 0; i < 4; i++ {
			require.NoError(t, pool.RecordResult("c", false, nil, nil))
		}
		snapshot, err := pool.Snapshot("c")
		require.NoError(t, err)
		assert.LessOrEqual(t, snapshot.SuccessEWMA, 0.0625)
		assert.False(t, snapshot.Healthy)
		assert.Equal(t, clock, snapshot.LastFailureAt)

		for i := 0; i < 5; i++ {
			require.NoError(t, pool.RecordResult("c", true, nil, nil))
		}
		snapshot, err = pool.Snapshot("c")
		require.NoError(t, err)
		assert.Greater(t, snapshot.SuccessEWMA, 0.7)
		assert.True(t, snapshot.Healthy)
	})

	t.Run("latency_sample_feeds_the_ewma", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{Decay: 0.5}, &clock)

		_, err := pool.RegisterEndpoint(testEndpoint("a", 1))
		require.NoError(t, err)

		require.NoError(t, pool.RecordResult("a", true, Ptr(40.0), nil))
		require.NoError(t, pool.RecordResult("a", true, Ptr(80.0), nil))

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, 60.0, snapshot.LatencyEWMAMs)
		assert.Equal(t, 2, snapshot.Observations)
	})

	t.Run("optional_session_release_frees_capacity", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		cfg := testEndpoint("a", 1)
		cfg.MaxSessions = 1
		_, err := pool.RegisterEndpoint(cfg)
		require.NoError(t, err)

		lease, err := pool.Acquire(domain.AcquireOptions{})
		require.NoError(t, err)

		require.NoError(t, pool.RecordResult("a", true, nil, Ptr(lease.SessionID)))

		snapshot, err := pool.Snapshot("a")
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.ActiveSessions)

		_, err = pool.Acquire(domain.AcquireOptions{})
		assert.NoError(t, err)
	})
}

func TestEndpointPoolDescribeAll(t *testing.T) {
	t.Run("empty_pool_returns_empty_slice", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		assert.NotNil(t, pool.DescribeAll())
		assert.Empty(t, pool.DescribeAll())
	})

	t.Run("snapshots_come_back_in_registration_order", func(t *testing.T) {
		clock := helpers.TestNow()
		pool := newTestPool(t, domain.PoolConfig{}, &clock)

		for _, endpointID := range []string{"b", "a", "c"} {
			_, err := pool.RegisterEndpoint(testEndpoint(endpointID, 1))
			require.NoError(t, err)
		}

		snapshots := pool.DescribeAll()
		require.Len(t, snapshots, 3)
		assert.Equal(t, "b", snapshots[0].Config.EndpointID)
		assert.Equal(t, "a", snapshots[1].Config.EndpointID)
		assert.Equal(t, "c", snapshots[2].Config.EndpointID)
	})
}

func TestEndpointPoolCapacityInvariant(t *testing.T) {
	clock := helpers.TestNow()
	pool := newTestPool(t, domain.PoolConfig{}, &clock)

	cfg := testEndpoint("d", 1)
	cfg.MaxSessions = 8
	_, err := pool.RegisterEndpoint(cfg)
	require.NoError(t, err)

	const callers = 64
	var wg sync.WaitGroup
	var acquired int64
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := pool.Acquire(domain.AcquireOptions{}); err == nil {
				atomic.AddInt64(&acquired, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 8, acquired, "concurrent acquires never overshoot the cap")

	snapshot, err := pool.Snapshot("d")
	require.NoError(t, err)
	assert.Equal(t, 8, snapshot.ActiveSessions)
}
