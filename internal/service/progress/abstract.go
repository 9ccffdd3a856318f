package progress

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// ProgressReader is the pure read path joining file and chunk state into
// per-file totals.
type ProgressReader interface {
	FileProgress(ctx context.Context, fileID int64) (*entities.FileProgress, error)
	FilesStatus(ctx context.Context, userID string) ([]*entities.FileProgress, error)
}
