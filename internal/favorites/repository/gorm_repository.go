package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/repository"
)

// GormRepository stores values in the kv_entries table of a SQLite or
// Postgres database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-backed key-value repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Get returns the stored value, or a NOT_FOUND error when the key is unset.
func (r *GormRepository) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := repository.FindOneBy[KVEntry](ctx, r.db, "storage_key = ?", key)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound(fmt.Sprintf("key %q not found", key))
		}
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put creates or overwrites the value under key.
func (r *GormRepository) Put(ctx context.Context, key string, value []byte) error {
	entry := &KVEntry{
		StorageKey: key,
		Value:      string(value),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := repository.Upsert(ctx, r.db, entry, []string{"storage_key"}, []string{"value", "updated_at"}); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an unset key is a NOT_FOUND error.
func (r *GormRepository) Delete(ctx context.Context, key string) error {
	return repository.DeleteBy[KVEntry](ctx, r.db, "storage_key = ?", key)
}
