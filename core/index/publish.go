package index

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"emoji-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// Publisher uploads generated artifacts to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
}

// NewPublisher creates a publisher writing under prefix in bucket.
func NewPublisher(client storage.Client, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Publish uploads both artifacts. The bucket is created when missing.
func (p *Publisher) Publish(ctx context.Context, artifacts *Artifacts) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", p.bucket, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.put(gctx, ListFile, artifacts.List, "application/json")
	})
	g.Go(func() error {
		return p.put(gctx, DeclarationFile, artifacts.Declaration, "application/typescript")
	})
	return g.Wait()
}

// ObjectName returns the storage key for an artifact file name.
func (p *Publisher) ObjectName(file string) string {
	if p.prefix == "" {
		return file
	}
	return path.Join(p.prefix, file)
}

func (p *Publisher) put(ctx context.Context, file string, data []byte, contentType string) error {
	name := p.ObjectName(file)
	_, err := p.client.PutObject(ctx, p.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	return nil
}
