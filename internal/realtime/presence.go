package realtime

import "sync"

// Subscriber is a live connection the gateway can push events to. Sessions
// implement it over websocket; tests implement it with a recorder.
type Subscriber interface {
	ID() string
	Send(event string, data interface{}) error
}

// Presence maps user ids to their current live connection. At most one
// connection per user; the most recently announced one wins. The registry is
// process-local only and rebuilt from zero on restart, so clients re-announce
// after every reconnect.
type Presence struct {
	mu     sync.RWMutex
	online map[string]Subscriber
}

func NewPresence() *Presence {
	return &Presence{online: make(map[string]Subscriber)}
}

// SetOnline registers sub as the live handle for userId, overwriting any
// previous handle. The replaced handle (nil if none) is returned; it keeps
// its room memberships but no longer receives direct routing.
func (p *Presence) SetOnline(userId string, sub Subscriber) Subscriber {
	p.mu.Lock()
	defer p.mu.Unlock()

	previous := p.online[userId]
	p.online[userId] = sub
	return previous
}

// Lookup returns the current handle for userId. Absence is a normal outcome
// meaning the user is reachable via store-and-forward only.
func (p *Presence) Lookup(userId string) (Subscriber, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	sub, ok := p.online[userId]
	return sub, ok
}

// Remove deletes the entry whose handle is exactly sub and returns the owning
// user id. A stale handle (already replaced by a newer connection, or never
// registered) is a no-op. The scan and delete run under one lock acquisition.
func (p *Presence) Remove(sub Subscriber) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for userId, registered := range p.online {
		if registered == sub {
			delete(p.online, userId)
			return userId, true
		}
	}
	return "", false
}
