package adapters

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/grpc"

	"mypool/domain"
	"mypool/helpers"
)

// ErrConnCacheClosed is returned by GetConn when the cache has been closed.
var ErrConnCacheClosed = errors.New("conn cache is closed")

// ConnCache keeps one gRPC client connection per endpoint for callers that execute
// their leased calls over gRPC: GetConn dials via the injected factory at most once per
// endpoint id and returns the cached connection afterwards; Invalidate closes and
// forgets a connection (call it after a failed call, before RecordResult); Close closes
// everything. The pool itself never touches these connections — leases and connections
// have independent lifetimes.
type ConnCache struct {
	factory func(ctx context.Context, lease domain.Lease) (*grpc.ClientConn, error)

	mu     sync.Mutex
	conns  map[string]*grpc.ClientConn
	closed bool
}

// NewConnCache creates the cache. Panics on nil factory.
//
// Parameter factory — (ctx, Lease) → (*grpc.ClientConn, error), dials lease.Address;
// the lease carries address and metadata so the factory can pick credentials per
// endpoint.
//
// Returns: *ConnCache.
//
// Called from processes that embed the pool and speak gRPC to the leased endpoints.
func NewConnCache(factory func(ctx context.Context, lease domain.Lease) (*grpc.ClientConn, error)) *ConnCache {
	return &ConnCache{
		factory: helpers.NilPanic(factory, "adapters.conn_cache.go: factory is required"),
		conns:   make(map[string]*grpc.ClientConn),
	}
}

// GetConn returns the connection for the lease's endpoint, dialing it via factory on
// first use. A replaced endpoint config keeps the old connection until Invalidate.
//
// Parameters: ctx — for dial when creating a new connection; lease — lease returned by
// the pool's Acquire.
//
// Returns: (conn, nil) on success; (nil, ErrConnCacheClosed) after Close; (nil, error)
// on factory error (the connection is not cached).
//
// Called between Acquire and RecordResult, outside any pool lock.
func (c *ConnCache) GetConn(ctx context.Context, lease domain.Lease) (*grpc.ClientConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrConnCacheClosed
	}
	if conn := c.conns[lease.EndpointID]; conn != nil {
		return conn, nil
	}
	conn, err := c.factory(ctx, lease)
	if err != nil {
		return nil, err
	}
	c.conns[lease.EndpointID] = conn
	return conn, nil
}

// Invalidate closes and removes the cached connection for endpointID, so the next
// GetConn dials fresh. Unknown ids are a no-op.
//
// Parameter endpointID — endpoint whose connection failed or whose config changed.
//
// Called by the embedding process after a failed call or a catalog change.
func (c *ConnCache) Invalidate(endpointID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn := c.conns[endpointID]; conn != nil {
		_ = conn.Close()
		delete(c.conns, endpointID)
	}
}

// Close marks the cache closed, closes all cached connections and clears the map.
// Idempotent: repeated call returns nil with no side effects.
//
// Returns: nil (connection close errors are not returned).
//
// Called from the embedding process on shutdown.
func (c *ConnCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, conn := range c.conns {
		_ = conn.Close()
	}
	c.conns = map[string]*grpc.ClientConn{}
	return nil
}
