package screen

import (
	"sync"
)

// Holder stores a screen state value and broadcasts every replacement to
// subscribers. Readers always receive a copy.
type Holder[S any] struct {
	mu     sync.RWMutex
	state  S
	clone  func(S) S
	subs   map[int]chan S
	nextID int
	closed bool
}

func newHolder[S any](initial S, clone func(S) S) *Holder[S] {
	return &Holder[S]{
		state: initial,
		clone: clone,
		subs:  make(map[int]chan S),
	}
}

// Snapshot returns a copy of the current state.
func (h *Holder[S]) Snapshot() S {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clone(h.state)
}

// Subscribe returns a channel that receives the current state immediately
// and then every subsequent state. Slow readers only ever see the latest
// value. The cancel func unsubscribes and closes the channel.
func (h *Holder[S]) Subscribe() (<-chan S, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan S, 1)
	if h.closed {
		ch <- h.clone(h.state)
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	ch <- h.clone(h.state)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// view runs fn against the current state without copying it. fn must not
// retain or modify the state.
func (h *Holder[S]) view(fn func(*S)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn(&h.state)
}

// update applies fn to a copy of the current state, stores the result and
// broadcasts it.
func (h *Holder[S]) update(fn func(*S)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.clone(h.state)
	fn(&next)
	h.state = next

	for _, ch := range h.subs {
		// Replace any unread value so the channel always holds the latest.
		select {
		case <-ch:
		default:
		}
		ch <- h.clone(next)
	}
}

// close closes every subscriber channel. Later updates are still stored
// but no longer broadcast.
func (h *Holder[S]) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
