// Package notify is a minimal synchronous observer registry: a cache
// announces "my data changed" and dependents refresh in response.
//
// Handlers run synchronously, in registration order, on the goroutine
// that called Emit. There is no queueing and no deduplication; a
// handler that needs to propagate further emits its own signal from
// inside the callback. The dependency graph between signals must be
// acyclic — that is on the caller.
//
// Nothing here is goroutine-safe. The owning service serializes all
// access (see service.Store).
package notify

// Signal is a zero-argument broadcast source.
type Signal struct {
	nextID   int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

// Subscription identifies one registered handler so it can be
// released deterministically before the observer is torn down.
type Subscription struct {
	sig *Signal
	id  int
}

// Connect registers fn and returns its subscription handle.
func (s *Signal) Connect(fn func()) Subscription {
	s.nextID++
	s.handlers = append(s.handlers, handler{id: s.nextID, fn: fn})
	return Subscription{sig: s, id: s.nextID}
}

// Emit invokes every registered handler in registration order. The
// handler list is snapshotted first, so a handler may disconnect
// itself or a sibling mid-emit; handlers disconnected that way are
// skipped for the rest of the broadcast.
func (s *Signal) Emit() {
	hs := append([]handler(nil), s.handlers...)
	for _, h := range hs {
		if s.connected(h.id) {
			h.fn()
		}
	}
}

func (s *Signal) connected(id int) bool {
	for _, h := range s.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// Disconnect removes the handler. Safe to call twice.
func (sub Subscription) Disconnect() {
	if sub.sig == nil {
		return
	}
	hs := sub.sig.handlers
	for i, h := range hs {
		if h.id == sub.id {
			sub.sig.handlers = append(hs[:i], hs[i+1:]...)
			return
		}
	}
}

// Connections collects subscriptions owned by one observer so they
// can be dropped together when its lifetime ends.
type Connections struct {
	subs []Subscription
}

func (c *Connections) Add(sig *Signal, fn func()) {
	c.subs = append(c.subs, sig.Connect(fn))
}

func (c *Connections) Disconnect() {
	for _, sub := range c.subs {
		sub.Disconnect()
	}
	c.subs = nil
}
