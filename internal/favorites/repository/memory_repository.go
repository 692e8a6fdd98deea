package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/narwhalmedia/cinedex/pkg/errors"
)

// MemoryRepository keeps values for the life of the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("key %q not found", key))
	}
	return slices.Clone(v), nil
}

func (r *MemoryRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = slices.Clone(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.values[key]; !ok {
		return errors.NotFound(fmt.Sprintf("key %q not found", key))
	}
	delete(r.values, key)
	return nil
}
