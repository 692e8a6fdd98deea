package source

import (
	"context"
	"io"
	"time"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

// Load fetches and normalizes the catalog once. Any failure to open, read or
// decode the payload is reported as UNAVAILABLE; there is no retry.
func Load(ctx context.Context, src Source, logger interfaces.Logger) ([]domain.Movie, error) {
	start := time.Now()
	log := logger.WithFields(interfaces.String("source", src.Name()))

	rc, err := src.Open(ctx)
	if err != nil {
		log.Error("Failed to open catalog", interfaces.Error(err))
		return nil, errors.Unavailable("failed to load catalog", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		log.Error("Failed to read catalog", interfaces.Error(err))
		return nil, errors.Unavailable("failed to load catalog", err)
	}

	raws, err := domain.DecodeRawRecords(data)
	if err != nil {
		log.Error("Failed to decode catalog", interfaces.Error(err))
		return nil, errors.Unavailable("failed to load catalog", err)
	}

	movies, duplicates := domain.NormalizeAll(raws)
	for _, id := range duplicates {
		log.Debug("Replaced duplicate movie id", interfaces.String("id", id))
	}

	log.Info("Catalog loaded",
		interfaces.Int("movies", len(movies)),
		interfaces.Int("duplicate_ids", len(duplicates)),
		interfaces.Duration("elapsed", time.Since(start)))

	return movies, nil
}
