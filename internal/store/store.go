// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// Store is a durable key-value blob store that never fails its caller.
// Each value is one JSON blob written atomically under its key. Underlying
// failures (backend down, quota, corrupted data) are logged and absorbed:
// Get reports false and the caller falls back to its default, Set degrades
// to whatever tiers still accept writes.
type Store interface {
	// Get unmarshals the value stored under key into dest and reports
	// whether a usable value was found. Corrupted values count as absent.
	Get(ctx context.Context, key string, dest interface{}) bool

	// Set marshals value and stores it under key.
	Set(ctx context.Context, key string, value interface{})

	// Delete removes the key.
	Delete(ctx context.Context, key string)
}

// Chain layers multiple stores into one fallback strategy: reads return the
// first tier that has the key, writes and deletes go to every tier. The last
// tier is expected to be an always-available Memory store so a session stays
// usable even when every durable tier is down.
type Chain struct {
	tiers []Store
}

// NewChain creates a fallback chain over the given tiers, ordered most
// durable first.
func NewChain(tiers ...Store) *Chain {
	return &Chain{tiers: tiers}
}

// Get returns the first tier's value for key
func (c *Chain) Get(ctx context.Context, key string, dest interface{}) bool {
	for _, t := range c.tiers {
		if t.Get(ctx, key, dest) {
			return true
		}
	}
	return false
}

// Set writes the value to every tier
func (c *Chain) Set(ctx context.Context, key string, value interface{}) {
	for _, t := range c.tiers {
		t.Set(ctx, key, value)
	}
}

// Delete removes the key from every tier
func (c *Chain) Delete(ctx context.Context, key string) {
	for _, t := range c.tiers {
		t.Delete(ctx, key)
	}
}

// decode unmarshals raw into a fresh value of dest's type and copies it over
// only on full success. Unmarshaling straight into dest would leave a prefix
// of decoded fields behind when a later field fails, and callers rely on
// their default surviving a corrupted blob intact.
func decode(raw []byte, dest interface{}) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("dest must be a non-nil pointer, got %T", dest)
	}

	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return err
	}

	rv.Elem().Set(tmp.Elem())
	return nil
}
