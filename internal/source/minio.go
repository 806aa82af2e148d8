package source

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOSource reads exports from a MinIO (or S3-compatible) bucket
type MinIOSource struct {
	client *minio.Client
	bucket string
}

// NewMinIOSource initializes a source backed by a MinIO bucket. The bucket
// must already exist; this service only reads from it.
func NewMinIOSource(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinIOSource, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating MinIO client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %q: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &MinIOSource{client: client, bucket: bucket}, nil
}

// Fetch downloads one export object from the bucket
func (s *MinIOSource) Fetch(ctx context.Context, filename string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching %s from bucket %q: %w", filename, s.bucket, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("reading %s from bucket %q: %w", filename, s.bucket, err)
	}
	return data, nil
}
