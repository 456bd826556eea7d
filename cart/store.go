package cart

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"storefront.GO/catalog"
	"storefront.GO/core/events"
	"storefront.GO/core/storage"
)

// StorageKey is the key the cart is persisted under, inside the store's namespace.
const StorageKey = "cart"

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSize  = errors.New("invalid size")
)

// Sizes are the selectable sizes, smallest first.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Options select the variant and quantity for AddToCart. Empty Color and Size add the product
// without a variant; Quantity defaults to 1.
type Options struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func (o Options) validate(p catalog.Product) error {
	if o.Color != "" && !p.HasColor(o.Color) {
		return fmt.Errorf("%w: %q for product %s", ErrInvalidColor, o.Color, p.ID)
	}
	if o.Size != "" && !validSize(o.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidSize, o.Size)
	}
	return nil
}

func validSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Store owns one cart. Every mutation runs under the store lock as read storage, reduce,
// write storage; after the lock is released the store publishes events.CartUpdated on its
// topic and calls its subscribers with the new state.
//
// Stores sharing a storage namespace and broker stay in step: each reloads when another
// publishes a change. Storage failures are logged and never returned; the in-memory state
// keeps the change.
type Store struct {
	mu      sync.Mutex
	state   State
	lastRaw string

	storage storage.Storage
	broker  events.Broker
	topic   string
	log     *zap.Logger

	subsMu sync.Mutex
	nextID uint64
	subs   map[uint64]func(State)

	unsubscribe func()
}

// NewStore loads the cart persisted in st and follows topic on broker. broker may be nil for a
// store nobody else writes to.
func NewStore(ctx context.Context, st storage.Storage, broker events.Broker, topic string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		state:   Recompute(nil),
		storage: st,
		broker:  broker,
		topic:   topic,
		log:     log.With(zap.String("topic", topic)),
		subs:    make(map[uint64]func(State)),
	}
	s.mu.Lock()
	s.syncLocked(ctx)
	s.mu.Unlock()
	if broker != nil {
		s.unsubscribe = broker.Subscribe(topic, func() { s.Reload(context.Background()) })
	}
	return s
}

// Close stops following the broker.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// disposable reports whether the store holds an empty cart and has no subscribers.
func (s *Store) disposable() bool {
	s.mu.Lock()
	empty := s.state.Empty()
	s.mu.Unlock()
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	return empty && len(s.subs) == 0
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddToCart adds opts.Quantity of p's variant, merging into an existing line with the same key.
func (s *Store) AddToCart(ctx context.Context, p catalog.Product, opts Options) (State, error) {
	if err := opts.validate(p); err != nil {
		return s.Snapshot(), err
	}
	return s.Dispatch(ctx, Add{Line: NewLine(p, opts.Color, opts.Size), Quantity: opts.Quantity}), nil
}

func (s *Store) RemoveFromCart(ctx context.Context, k Key) State {
	return s.Dispatch(ctx, Remove{Key: k})
}

func (s *Store) UpdateQuantity(ctx context.Context, k Key, qty int) State {
	return s.Dispatch(ctx, UpdateQuantity{Key: k, Quantity: qty})
}

func (s *Store) ClearCart(ctx context.Context) State {
	return s.Dispatch(ctx, Clear{})
}

// LoadCart replaces the cart with lines.
func (s *Store) LoadCart(ctx context.Context, lines []Line) State {
	return s.Dispatch(ctx, Load{Lines: lines})
}

// Dispatch applies a, persists the result and notifies. A no-op action neither writes nor
// notifies.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	s.syncLocked(ctx)
	prev := s.state
	next := Reduce(prev, a)
	changed := !sameState(prev, next)
	if changed {
		s.state = next
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if changed {
		s.publish(next)
	}
	return next
}

// Reload re-reads the persisted cart and notifies subscribers if it changed.
func (s *Store) Reload(ctx context.Context) State {
	s.mu.Lock()
	changed := s.syncLocked(ctx)
	state := s.state
	s.mu.Unlock()

	if changed {
		s.notify(state)
	}
	return state
}

// Subscribe calls fn with the new state after every change, until cancel is called.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			delete(s.subs, id)
		})
	}
}

// syncLocked loads the persisted cart when it differs from what this store last read or
// wrote. It reports whether the state was replaced.
func (s *Store) syncLocked(ctx context.Context) bool {
	raw, _, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn("cart read failed", zap.Error(err))
		return false
	}
	if raw == s.lastRaw {
		return false
	}
	s.lastRaw = raw
	lines, err := Decode(raw)
	if err != nil {
		s.log.Warn("malformed cart payload, treating as empty", zap.Error(err))
		lines = nil
	}
	next := Recompute(lines)
	if sameState(s.state, next) {
		return false
	}
	s.state = next
	return true
}

func (s *Store) persistLocked(ctx context.Context) {
	raw, err := Encode(s.state.Items)
	if err != nil {
		s.log.Error("cart encode failed", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
		s.log.Warn("cart write failed, keeping in-memory state", zap.Error(err))
		return
	}
	s.lastRaw = raw
}

func (s *Store) publish(state State) {
	if s.broker != nil {
		s.broker.Publish(s.topic)
	}
	s.notify(state)
}

func (s *Store) notify(state State) {
	for _, fn := range s.subscribers() {
		fn(state)
	}
}

func (s *Store) subscribers() []func(State) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]func(State), len(ids))
	for i, id := range ids {
		out[i] = s.subs[id]
	}
	return out
}

func sameState(a, b State) bool {
	if a.TotalItems != b.TotalItems || a.TotalCents != b.TotalCents || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	return true
}
