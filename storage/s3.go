package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"legalsummary-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// objectGetter is the subset of the S3 client used here
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Storage implements Storage interface for AWS S3
type S3Storage struct {
	client objectGetter
	bucket string
}

// NewS3Storage creates a new S3 storage instance
func NewS3Storage(ctx context.Context, cfg StorageConfig) (*S3Storage, error) {
	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadAWSConfig(ctx, region, cfg.AWSAccessKey, cfg.AWSSecretKey)
	if err != nil {
		return nil, err
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
	}, nil
}

// Download retrieves a document from S3
func (s *S3Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to download from S3: %w", err)
	}

	return result.Body, nil
}
