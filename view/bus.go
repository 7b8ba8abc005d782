package view

import "sync"

// Bus carries catalog update signals between independently-mounted views
// and holds one mirror slot per collection. The mirror is a convenience
// copy of the latest known collection, never the authority: it must
// always be re-derivable from a fresh fetch. The bus is injected into
// every view, there is no ambient global.
type Bus struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(collection string)
	mirrors map[string]interface{}
}

func NewBus() *Bus {
	return &Bus{
		subs:    make(map[int]func(collection string)),
		mirrors: make(map[string]interface{}),
	}
}

// Subscribe registers a handler for update signals and returns its
// unsubscribe function.
func (b *Bus) Subscribe(fn func(collection string)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers the named collection's update signal to every
// subscriber. Delivery is synchronous and in no particular order.
func (b *Bus) Publish(collection string) {
	b.mu.Lock()
	handlers := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(collection)
	}
}

// SetMirror stores the latest known snapshot for a collection
func (b *Bus) SetMirror(collection string, snapshot interface{}) {
	b.mu.Lock()
	b.mirrors[collection] = snapshot
	b.mu.Unlock()
}

// Mirror returns the stored snapshot for a collection, if any
func (b *Bus) Mirror(collection string) (interface{}, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot, ok := b.mirrors[collection]
	return snapshot, ok
}
