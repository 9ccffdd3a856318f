package filestore

import (
	"context"
	"io"
	"time"
)

// FileStore is the object store holding raw uploads. This subsystem never
// writes objects, uploads happen directly against the presigned URL.
//
//go:generate mockgen -source=abstract.go -destination=abstract_mock.go -package=filestore
type FileStore interface {
	// UploadURL returns a presigned PUT URL for the file's storage key
	UploadURL(ctx context.Context, fileID int64, ttl time.Duration) (string, error)
	// Read streams the raw uploaded object
	Read(ctx context.Context, fileID int64) (io.ReadCloser, error)
}
