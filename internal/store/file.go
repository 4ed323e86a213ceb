// Package store persists whole JSON documents to disk, one file per
// collection. Every save rewrites the full document; there are no
// partial updates at this layer.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File owns a single JSON document of type T on disk.
//
// A missing or unparsable file reads as the caller-supplied default, so
// a corrupted collection degrades to an empty one instead of failing
// requests. Writes go through a temp file and rename, so readers never
// observe a partially written document.
type File[T any] struct {
	path string
	log  *zap.Logger

	mu sync.Mutex
}

// NewFile returns a File backed by path. If log is nil a no-op logger
// is used.
func NewFile[T any](path string, log *zap.Logger) *File[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &File[T]{path: path, log: log}
}

// Path returns the backing file path.
func (f *File[T]) Path() string { return f.path }

// Load reads and decodes the document. A missing file returns def; an
// unreadable or unparsable file logs a warning and returns def.
func (f *File[T]) Load(def T) T {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return def
	}
	if err != nil {
		f.log.Warn("store: read failed, treating as empty",
			zap.String("path", f.path), zap.Error(err))
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		f.log.Warn("store: parse failed, treating as empty",
			zap.String("path", f.path), zap.Error(err))
		return def
	}
	return v
}

// Save encodes v and atomically replaces the document on disk.
func (f *File[T]) Save(v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", filepath.Base(f.path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("store: mkdir for %s: %w", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: rename %s: %w", f.path, err)
	}
	return nil
}
