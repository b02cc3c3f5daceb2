package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"

	"nostalgic/nostalgic/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore writes uploads to an S3-compatible bucket under "images/".
// Addresses have the form "<bucket>/images/<name>".
type MinIOStore struct {
	client *minio.Client
	bucket string
}

func NewMinIOStore(ctx context.Context, cfg config.Config) (*MinIOStore, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOStore{client: client, bucket: cfg.MinIOBucket}, nil
}

func (m *MinIOStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	key := path.Join("images", name)
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// size -1 streams the upload as multipart chunks
	_, err := m.client.PutObject(ctx, m.bucket, key, r, -1, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return path.Join(m.bucket, key), nil
}
