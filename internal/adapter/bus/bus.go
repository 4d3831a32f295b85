package bus

import "sync"

// Bus is an in-process implementation of port.EventBus. Handlers run
// synchronously on the publishing goroutine, matching the cooperative
// single-view execution model: a publisher observes its subscribers'
// re-merges before continuing.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]func()
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[string]map[int]func())}
}

// Publish invokes every handler subscribed to the topic. Publishing to a
// topic with no subscribers is a no-op.
func (b *Bus) Publish(topic string) {
	b.mu.Lock()
	hs := make([]func(), 0, len(b.handlers[topic]))
	for _, h := range b.handlers[topic] {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

// Subscribe registers a handler and returns its deregistration func.
// Calling unsubscribe more than once is safe.
func (b *Bus) Subscribe(topic string, handler func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.handlers[topic][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[topic], id)
	}
}
