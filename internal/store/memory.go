package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in process memory. Used by tests and by
// STORE_DRIVER=memory for throwaway runs.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	doc, ok := b.docs[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (b *MemoryBackend) Write(_ context.Context, name string, doc []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	b.docs[name] = stored
	return nil
}

func (b *MemoryBackend) Ping(_ context.Context) error { return nil }
