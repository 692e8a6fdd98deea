package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/narwhalmedia/cinedex/pkg/database"
	"github.com/narwhalmedia/cinedex/pkg/logger"
)

// NewTestDB opens a private in-memory SQLite database that is closed when
// the test ends. Callers run their own migrations.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, cleanup, err := database.Open(&database.Config{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
	}, logger.NewNoop())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return db
}
