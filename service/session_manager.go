package service

import (
	"fmt"
	"maps"
	"time"

	"mypool/domain"
)

// session is the pool-side record of one live lease. A zero expiresAt means the lease
// never expires and holds capacity until released explicitly.
type session struct {
	sessionID  string
	endpointID string
	clientID   string
	acquiredAt time.Time
	expiresAt  time.Time
}

// expired reports whether the session's expiry has passed. Sessions expire at the
// boundary: expiresAt equal to now counts as expired.
func (s *session) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && !s.expiresAt.After(now)
}

// isAvailableLocked is the availability predicate for one endpoint. The capacity cap
// is checked first and holds regardless of allowUnhealthy; only the health and
// cooldown checks are relaxed by it. Caller must hold the lock.
func (p *endpointPool) isAvailableLocked(entry *endpointEntry, now time.Time, allowUnhealthy bool) bool {
	if entry.config.MaxSessions > 0 && entry.health.activeSessions >= entry.config.MaxSessions {
		return false
	}
	if allowUnhealthy {
		return true
	}
	return entry.health.healthy && !entry.health.inCooldown(now)
}

// mintSessionLocked claims one unit of the endpoint's capacity and returns the lease.
// Session ids are "<endpoint id>:<sequence>"; the per-endpoint sequence counter only
// ever grows, so an id can never be reissued, not even across remove/re-register.
// opts.TTLMs zero means the pool default, negative means no expiry. Caller must hold
// the write lock and have checked availability.
func (p *endpointPool) mintSessionLocked(entry *endpointEntry, now time.Time, opts domain.AcquireOptions) domain.Lease {
	p.seqs[entry.config.EndpointID]++
	sessionID := fmt.Sprintf("%s:%d", entry.config.EndpointID, p.seqs[entry.config.EndpointID])

	ttlMs := opts.TTLMs
	if ttlMs == 0 {
		ttlMs = p.config.DefaultLeaseTTLMs
	}
	var expiresAt time.Time
	if ttlMs > 0 {
		expiresAt = now.Add(time.Duration(ttlMs) * time.Millisecond)
	}

	entry.health.activeSessions++
	p.sessions[sessionID] = &session{
		sessionID:  sessionID,
		endpointID: entry.config.EndpointID,
		clientID:   opts.ClientID,
		acquiredAt: now,
		expiresAt:  expiresAt,
	}

	return domain.Lease{
		SessionID:  sessionID,
		EndpointID: entry.config.EndpointID,
		Address:    entry.config.Address,
		Metadata:   maps.Clone(entry.config.Metadata),
		ClientID:   opts.ClientID,
		AcquiredAt: now,
		ExpiresAt:  expiresAt,
	}
}

// releaseLocked removes the session and gives its capacity unit back to the owning
// endpoint. Unknown ids return false. The decrement is guarded so a session whose
// endpoint was purged in the meantime cannot drive another endpoint's count negative.
// Caller must hold the write lock.
func (p *endpointPool) releaseLocked(sessionID string) bool {
	s, ok := p.sessions[sessionID]
	if !ok {
		return false
	}
	delete(p.sessions, sessionID)

	if entry, ok := p.endpoints[s.endpointID]; ok && entry.health.activeSessions > 0 {
		entry.health.activeSessions--
	}
	return true
}

// sweepExpiredLocked releases every session whose expiry has passed, exactly as
// releaseLocked would. Runs at the top of every Acquire; there is no background
// timer. Caller must hold the write lock.
func (p *endpointPool) sweepExpiredLocked(now time.Time) {
	for sessionID, s := range p.sessions {
		if s.expired(now) {
			p.releaseLocked(sessionID)
		}
	}
}
