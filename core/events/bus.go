// Package events carries named, payload-free notifications between cart views.
//
// A notification only says "storage under this topic may have changed"; listeners reload and
// recompute. Delivery is synchronous and in subscription order, with no deduplication.
package events

import (
	"sort"
	"sync"
)

// CartUpdated is the topic prefix fired after every persisted cart mutation.
const CartUpdated = "cartUpdated"

// Topic scopes a notification name to a storage namespace ("cartUpdated:<session>").
func Topic(name, namespace string) string {
	if namespace == "" {
		return name
	}
	return name + ":" + namespace
}

// Broker is what cart stores need from a notification channel.
type Broker interface {
	Publish(topic string)
	Subscribe(topic string, fn func()) (cancel func())
}

// Bus is the in-process Broker.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[uint64]func())}
}

// Publish calls every listener of topic on the caller's goroutine. Listeners may subscribe,
// unsubscribe or publish from inside the callback.
func (b *Bus) Publish(topic string) {
	for _, fn := range b.listeners(topic) {
		fn()
	}
}

func (b *Bus) listeners(topic string) []func() {
	b.mu.RLock()
	defer b.mu.RUnlock()
	m := b.subs[topic]
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]func(), len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}
	return out
}

// Subscribe registers fn for topic. The returned cancel is idempotent.
func (b *Bus) Subscribe(topic string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]func())
	}
	b.subs[topic][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
		if len(b.subs[topic]) == 0 {
			delete(b.subs, topic)
		}
	}
}

// Len reports how many listeners topic has.
func (b *Bus) Len(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
