package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when no document exists under the key
var ErrNotFound = errors.New("document not found")

// Storage interface for reading stored legal documents
type Storage interface {
	// Download retrieves a document by key
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeNone  StorageType = "none"
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration.
// It returns nil without error when no document store is configured.
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", StorageTypeNone:
		return nil, nil
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
