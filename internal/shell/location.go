package shell

import (
	"log/slog"
	"sync"
)

// History is an in-memory location history addressing the shell by fragment. It mirrors the
// semantics of a browser location: Push records an entry quietly while Assign, Back and Forward
// are changes coming from outside the view and notify subscribers.
type History struct {
	mu        *sync.RWMutex
	entries   []string
	index     int
	listeners map[int]chan<- string
	nextID    int
}

func NewHistory(initialFragment string) *History {
	return &History{
		mu:        &sync.RWMutex{},
		entries:   []string{ParseFragment(initialFragment)},
		listeners: make(map[int]chan<- string),
	}
}

// Fragment returns the current fragment without a leading "#".
func (h *History) Fragment() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.entries[h.index]
}

// Push appends an entry after the current one, discarding any forward entries. Subscribers
// are not notified.
func (h *History) Push(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.push(ParseFragment(fragment))
}

func (h *History) push(fragment string) {
	h.entries = append(h.entries[:h.index+1], fragment)
	h.index = len(h.entries) - 1
}

// Assign sets the fragment as if the user edited the location. Assigning the current fragment
// is a no-op.
func (h *History) Assign(fragment string) {
	fragment = ParseFragment(fragment)

	h.mu.Lock()
	if h.entries[h.index] == fragment {
		h.mu.Unlock()

		return
	}
	h.push(fragment)
	h.mu.Unlock()

	h.notify(fragment)
}

// Back moves to the previous entry, returning false when already at the oldest one.
func (h *History) Back() bool {
	return h.move(-1)
}

// Forward moves to the next entry, returning false when already at the newest one.
func (h *History) Forward() bool {
	return h.move(1)
}

func (h *History) move(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()

		return false
	}
	h.index = next
	fragment := h.entries[next]
	h.mu.Unlock()

	h.notify(fragment)

	return true
}

func (h *History) CanBack() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.index > 0
}

func (h *History) CanForward() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.index < len(h.entries)-1
}

// Subscribe registers a channel to receive fragment changes. The returned func releases the
// subscription and is safe to call more than once. Delivery never blocks: a change is dropped
// for a listener whose buffer is full.
func (h *History) Subscribe(listener chan<- string) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = listener

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.listeners, id)
	}
}

func (h *History) notify(fragment string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- fragment:
		default:
			slog.Warn("Dropped fragment change", slog.String("fragment", fragment))
		}
	}
}
