package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/cinedex/pkg/database"
)

// KVEntry is one stored value. Favorites and theme each occupy one row.
type KVEntry struct {
	StorageKey string    `gorm:"column:storage_key;primaryKey;size:191"`
	Value      string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Migrations returns the schema changes owned by this package.
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240601_001",
			Name:    "Create key-value table",
			Up: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&KVEntry{})
			},
		},
	}
}
