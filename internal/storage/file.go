// Package storage owns the catalog's backing file. Callers never touch the
// file directly; they load full snapshots and save full snapshots.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"product-catalog/internal/codec"
	"product-catalog/internal/models"
)

// Store reads and writes the single JSON file behind the catalog.
type Store struct {
	path   string
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load reads the backing file into memory. A missing file is an empty
// catalog, not an error.
func (s *Store) Load() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}

	products, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", s.path, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Save writes the full collection atomically: encode, write to a temp file
// in the target directory, then rename over the target. A crash mid-write
// leaves the previous file intact, and a concurrent reader never sees a
// half-written file.
func (s *Store) Save(products []models.Product) error {
	data, err := codec.Encode(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace catalog file %s: %w", s.path, err)
	}

	s.logger.Debug("catalog saved",
		zap.String("path", s.path),
		zap.Int("products", len(products)),
	)
	return nil
}
