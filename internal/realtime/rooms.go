package realtime

import "sync"

// Rooms maps room ids to the set of live connections joined to them.
// Membership is transient: it lasts only as long as the connection. Join and
// Leave are the only mutation points so the broadcast surface stays auditable.
type Rooms struct {
	mu      sync.RWMutex
	members map[string]map[Subscriber]struct{}
}

func NewRooms() *Rooms {
	return &Rooms{members: make(map[string]map[Subscriber]struct{})}
}

// Join adds sub to the room. Joining twice is a no-op.
func (r *Rooms) Join(room string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.members[room] == nil {
		r.members[room] = make(map[Subscriber]struct{})
	}
	r.members[room][sub] = struct{}{}
}

// Leave removes sub from the room. Leaving a room sub is not in is a no-op.
func (r *Rooms) Leave(room string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.members[room]; ok {
		delete(members, sub)
		if len(members) == 0 {
			delete(r.members, room)
		}
	}
}

// LeaveAll removes sub from every room it joined. Called on disconnect.
func (r *Rooms) LeaveAll(sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room, members := range r.members {
		delete(members, sub)
		if len(members) == 0 {
			delete(r.members, room)
		}
	}
}

// Members returns a snapshot of the room's current subscribers.
func (r *Rooms) Members(room string) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]Subscriber, 0, len(r.members[room]))
	for sub := range r.members[room] {
		members = append(members, sub)
	}
	return members
}

// Publish delivers the event to every subscriber in the room, skipping except
// when non-nil. Send failures are the subscriber's problem; delivery to the
// rest of the room continues.
func (r *Rooms) Publish(room, event string, data interface{}, except Subscriber) {
	for _, sub := range r.Members(room) {
		if sub == except {
			continue
		}
		_ = sub.Send(event, data)
	}
}
