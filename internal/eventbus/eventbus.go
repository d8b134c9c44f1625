// ABOUTME: Typed event bus used to observe request lifecycle transitions
// ABOUTME: Delivers synchronously in subscription order; a nil *Bus drops events

package eventbus

import (
	"slices"
	"sync"

	pilog "github.com/mauromedda/mindweaver/internal/log"
)

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Calling the returned function more than once is harmless.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription[T]) bool { return s.id == id })
		b.mu.Unlock()
	}
}

// Publish sends an event to all registered handlers in subscription order.
// A panicking handler is logged and does not stop delivery to the rest.
func (b *Bus[T]) Publish(event T) {
	if b == nil {
		return
	}
	b.mu.RLock()
	snapshot := slices.Clone(b.subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		deliver(s.fn, event)
	}
}

func deliver[T any](fn Handler[T], event T) {
	defer func() {
		if r := recover(); r != nil {
			pilog.Error("eventbus: handler panic: %v", r)
		}
	}()
	fn(event)
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
