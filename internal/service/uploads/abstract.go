package uploads

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// UploadManager issues presigned upload URLs. The file record is created
// before any bytes exist in storage.
type UploadManager interface {
	GetUploadURL(ctx context.Context, fileName, userID string) (*entities.UploadTicket, error)
}
