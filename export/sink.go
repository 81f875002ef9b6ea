package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sonnes/ganaka/config"
)

// ObjectStore puts byte blobs into a bucket under a key. The upload loop
// depends on this interface, not on a concrete client.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string, metadata map[string]string) error
}

// MinioStore implements ObjectStore against any S3-compatible endpoint.
type MinioStore struct {
	mc *minio.Client
}

// NewMinioStore builds an object-store client from configuration.
// Credentials are passed through as-is; missing ones fail construction.
func NewMinioStore(cfg config.Config) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("object store endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("object store access key and secret key are required")
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &MinioStore{mc: mc}, nil
}

// Put uploads one object.
func (s *MinioStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string, metadata map[string]string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.mc.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
