package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/narwhalmedia/cinedex/pkg/config"
)

// Source yields the raw catalog JSON. It is opened once per process.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// New picks the source implementation for cfg.Kind.
func New(ctx context.Context, cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case "", "file":
		return &FileSource{Path: cfg.Path}, nil
	case "http":
		return &HTTPSource{URL: cfg.URL, Client: &http.Client{Timeout: cfg.Timeout}}, nil
	case "s3":
		return NewS3Source(ctx, S3Options{
			Bucket:   cfg.S3Bucket,
			Key:      cfg.S3Key,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unsupported source kind: %q", cfg.Kind)
	}
}

// FileSource reads the catalog from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) Open(context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, nil
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// HTTPSource fetches the catalog with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status fetching catalog: %s", resp.Status)
	}
	return resp.Body, nil
}

func (s *HTTPSource) Name() string {
	return s.URL
}
