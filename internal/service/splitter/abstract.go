package splitter

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// FileSplitter streams an uploaded CSV out of object storage, partitions it
// into fixed-size chunks and dispatches one queue job per chunk.
type FileSplitter interface {
	ProcessFile(ctx context.Context, fileID int64, userID string, mapping entities.ColumnMapping) error
}
