package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage interface for a local directory
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage path is not a directory: %s", basePath)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// Download opens a document below the base directory
func (s *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, ok := s.resolve(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return file, nil
}

// resolve maps a key to a path, rejecting keys that escape the base directory
func (s *LocalStorage) resolve(key string) (string, bool) {
	cleaned := filepath.Clean("/" + filepath.FromSlash(key))
	if cleaned == string(filepath.Separator) {
		return "", false
	}
	fullPath := filepath.Join(s.basePath, cleaned)

	rel, err := filepath.Rel(s.basePath, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return fullPath, true
}
