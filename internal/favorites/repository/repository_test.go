package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/internal/favorites/repository"
	"github.com/narwhalmedia/cinedex/pkg/database"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/logger"
	"github.com/narwhalmedia/cinedex/test/testutil"
)

var (
	_ favorites.Repository = (*repository.GormRepository)(nil)
	_ favorites.Repository = (*repository.MemoryRepository)(nil)
)

// RepositoryTestSuite runs the same contract against every implementation.
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) favorites.Repository
	repo    favorites.Repository
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s.T())
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "imdbFavorites_v2")
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestPutGet() {
	s.Require().NoError(s.repo.Put(s.ctx, "imdbTheme", []byte("light")))
	v, err := s.repo.Get(s.ctx, "imdbTheme")
	s.Require().NoError(err)
	s.Equal("light", string(v))
}

func (s *RepositoryTestSuite) TestPutOverwrites() {
	s.Require().NoError(s.repo.Put(s.ctx, "k", []byte("[]")))
	s.Require().NoError(s.repo.Put(s.ctx, "k", []byte(`[{"id":"x"}]`)))

	v, err := s.repo.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal(`[{"id":"x"}]`, string(v))
}

func (s *RepositoryTestSuite) TestKeysAreIndependent() {
	s.Require().NoError(s.repo.Put(s.ctx, "a", []byte("1")))
	s.Require().NoError(s.repo.Put(s.ctx, "b", []byte("2")))

	a, err := s.repo.Get(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("1", string(a))
}

func TestGormRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T) favorites.Repository {
		db := testutil.NewTestDB(t)
		require.NoError(t, database.NewMigrator(db, logger.NewNoop(), repository.Migrations()...).Migrate())
		return repository.NewGormRepository(db)
	}})
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(*testing.T) favorites.Repository {
		return repository.NewMemoryRepository()
	}})
}

func TestMemoryRepository_ValuesAreCopied(t *testing.T) {
	repo := repository.NewMemoryRepository()
	buf := []byte("dark")
	require.NoError(t, repo.Put(context.Background(), "t", buf))
	buf[0] = 'X'

	v, err := repo.Get(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, "dark", string(v))
}

func TestDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, database.NewMigrator(db, logger.NewNoop(), repository.Migrations()...).Migrate())
	repo := repository.NewGormRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))
	_, err := repo.Get(ctx, "k")
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "k")))
}
