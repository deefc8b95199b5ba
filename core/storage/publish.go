package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// DefaultPrefix is used when Config.Prefix is empty.
const DefaultPrefix = "tables/"

// Publisher uploads rendered tables to one bucket.
type Publisher struct {
	client Client
	bucket string
	region string
	prefix string
}

// NewPublisher creates a Publisher for the bucket, region and prefix in cfg.
func NewPublisher(client Client, cfg Config) *Publisher {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Publisher{client: client, bucket: cfg.Bucket, region: cfg.Region, prefix: prefix}
}

// Publish stores data as prefix + base name of name, creating the bucket when it is
// missing. It returns the object key.
func (p *Publisher) Publish(ctx context.Context, name, contentType string, data []byte) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	key := p.prefix + path.Base(name)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}
