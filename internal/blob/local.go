package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes blobs to a directory on disk and serves them under a
// base URL. It stands in for a hosted blob service in development and in
// tests.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStore) Put(ctx context.Context, filename, contentType string, body io.Reader) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Prefix with a UUID so repeated uploads of the same filename never
	// overwrite each other.
	name := uuid.New().String() + "-" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob file: %w", err)
	}

	size, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write blob file: %w", err)
	}

	return &Object{
		URL:         s.baseURL + "/" + name,
		Pathname:    name,
		ContentType: contentType,
		Size:        size,
	}, nil
}
