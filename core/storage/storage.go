// Package storage is the key-value "local storage" behind carts: string keys, string values,
// synchronous calls that may fail. Callers log failures and keep their in-memory state.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by backends that cannot currently accept writes.
var ErrUnavailable = errors.New("storage unavailable")

type Storage interface {
	// Get returns the value for key; found is false for a missing key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Prefixed scopes every key of s under prefix ("<prefix>:<key>").
func Prefixed(s Storage, prefix string) Storage {
	if prefix == "" {
		return s
	}
	return &prefixed{s: s, prefix: prefix + ":"}
}

type prefixed struct {
	s      Storage
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.s.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.s.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.s.Remove(ctx, p.prefix+key)
}
