package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront.GO/core/events"
	"storefront.GO/core/storage"
)

// Sessions hands out one Store per session id, each persisted under its own storage namespace
// and notified on its own topic. Stores are only a cache over storage: Evict drops idle ones and
// the next Get reloads the persisted cart.
type Sessions struct {
	mu      sync.Mutex
	stores  map[string]*sessionStore
	storage storage.Storage
	broker  events.Broker
	log     *zap.Logger
	now     func() time.Time
}

type sessionStore struct {
	store    *Store
	lastUsed time.Time
}

func NewSessions(st storage.Storage, broker events.Broker, log *zap.Logger) *Sessions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessions{
		stores:  make(map[string]*sessionStore),
		storage: st,
		broker:  broker,
		log:     log,
		now:     time.Now,
	}
}

// Namespace is the storage prefix of a session's cart.
func Namespace(session string) string {
	return "session:" + session
}

// Get returns the session's store, creating and loading it on first use.
func (s *Sessions) Get(ctx context.Context, session string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.stores[session]; ok {
		e.lastUsed = s.now()
		return e.store
	}
	st := NewStore(ctx,
		storage.Prefixed(s.storage, Namespace(session)),
		s.broker,
		events.Topic(events.CartUpdated, session),
		s.log.With(zap.String("session", session)))
	s.stores[session] = &sessionStore{store: st, lastUsed: s.now()}
	return st
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}

// Evict closes and forgets the stores not used for idle, and the stores holding an empty cart
// that nobody subscribes to. It returns the number of stores evicted.
func (s *Sessions) Evict(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for id, e := range s.stores {
		if e.lastUsed.After(cutoff) && !e.store.disposable() {
			continue
		}
		e.store.Close()
		delete(s.stores, id)
		n++
	}
	if n > 0 {
		s.log.Debug("cart stores evicted", zap.Int("evicted", n), zap.Int("remaining", len(s.stores)))
	}
	return n
}

// Close detaches every store from the broker.
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.stores {
		e.store.Close()
		delete(s.stores, id)
	}
}
