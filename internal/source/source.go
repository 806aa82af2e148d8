package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Source fetches raw daily CSV exports by filename
type Source interface {
	Fetch(ctx context.Context, filename string) ([]byte, error)
}

// DirSource reads exports from a local directory
type DirSource struct {
	dir string
}

// NewDirSource creates a source backed by a local directory
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Fetch reads one export file from the directory
func (s *DirSource) Fetch(_ context.Context, filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return data, nil
}
