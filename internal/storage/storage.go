package storage

import (
	"context"
	"time"
)

// ObjectStorage is the external object-store collaborator. All three calls are
// best-effort network operations independent of any database transaction.
type ObjectStorage interface {
	IssueUploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	IssueDownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
