// Package store persists each entity kind as one self-describing document
// per collection: {"<collection>": [ ...entities... ]}.
//
// Every mutation rewrites the whole document. There is no indexing; callers
// Load the full sequence and scan it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection names used by the repositories.
const (
	Workers   = "workers"
	Histories = "histories"
	Penalties = "penalties"
	Bonuses   = "bonuses"
	Tasks     = "tasks"
	Users     = "users"
)

// Backend stores raw collection documents.
type Backend interface {
	// Read returns the stored document, or nil with no error when nothing
	// has been written for name yet.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the whole document for name.
	Write(ctx context.Context, name string, doc []byte) error
	Ping(ctx context.Context) error
}

// Collection is a typed view over one named document.
//
// Update holds a per-collection mutex across load, mutate and save, so
// writers inside one process never lose each other's updates. Writers in
// different processes sharing a backend are not coordinated.
type Collection[T any] struct {
	name    string
	backend Backend
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

func (c *Collection[T]) Name() string { return c.name }

// Load returns every entity in the collection. A missing document, or one
// without the collection key, yields an empty sequence.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Read(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", c.name, err)
	}
	return decode[T](c.name, raw)
}

// Save overwrites the collection with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// Update loads the collection, passes it to fn and saves what fn returns.
// If fn fails nothing is written and its error is returned unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, items)
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	doc, err := encode(c.name, items)
	if err != nil {
		return err
	}
	if err := c.backend.Write(ctx, c.name, doc); err != nil {
		return fmt.Errorf("store: write %s: %w", c.name, err)
	}
	return nil
}

func decode[T any](name string, raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return []T{}, nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", name, err)
	}
	items := []T{}
	body, ok := doc[name]
	if !ok || string(body) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", name, err)
	}
	return items, nil
}

func encode[T any](name string, items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	doc, err := json.MarshalIndent(map[string][]T{name: items}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", name, err)
	}
	return doc, nil
}
