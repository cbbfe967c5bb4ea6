package service

import (
	"time"
)

// stickyBinding pins one client id to an endpoint. A zero expiresAt means the binding
// never expires on its own; it still dies with its endpoint.
type stickyBinding struct {
	endpointID string
	expiresAt  time.Time
}

// expired reports whether the binding's TTL has elapsed.
func (b *stickyBinding) expired(now time.Time) bool {
	return !b.expiresAt.IsZero() && !b.expiresAt.After(now)
}

// boundEndpointLocked resolves clientID's binding to a live endpoint entry. Expired
// bindings and bindings whose endpoint has left the registry are purged on the spot
// and resolve to nil. Caller must hold the write lock.
func (p *endpointPool) boundEndpointLocked(clientID string, now time.Time) *endpointEntry {
	b, ok := p.bindings[clientID]
	if !ok {
		return nil
	}
	if b.expired(now) {
		delete(p.bindings, clientID)
		return nil
	}
	entry, ok := p.endpoints[b.endpointID]
	if !ok {
		delete(p.bindings, clientID)
		return nil
	}
	return entry
}

// bindClientLocked creates or overwrites clientID's binding to endpointID and starts
// the TTL window over. Called both on first selection and on every sticky reuse, so
// active clients keep their binding alive. Caller must hold the write lock.
func (p *endpointPool) bindClientLocked(clientID string, endpointID string, now time.Time) {
	var expiresAt time.Time
	if p.config.StickyTTLMs > 0 {
		expiresAt = now.Add(time.Duration(p.config.StickyTTLMs) * time.Millisecond)
	}
	p.bindings[clientID] = &stickyBinding{endpointID: endpointID, expiresAt: expiresAt}
}

// sweepBindingsLocked drops every binding whose TTL has elapsed. Runs at the top of
// every Acquire, alongside the session sweep. Caller must hold the write lock.
func (p *endpointPool) sweepBindingsLocked(now time.Time) {
	for clientID, b := range p.bindings {
		if b.expired(now) {
			delete(p.bindings, clientID)
		}
	}
}
