package storage

import (
	"context"
)

// Client abstracts the subset of S3 operations the deploy command needs.
type Client interface {
	UploadFile(ctx context.Context, key, filePath string, contentType string) error
	ClearBucket(ctx context.Context) error
}
