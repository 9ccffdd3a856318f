package processor

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// ChunkProcessor consumes chunk jobs. The queue delivers at least once, so
// HandleChunk must be safe to invoke more than once for the same
// (fileId, chunkNumber).
type ChunkProcessor interface {
	HandleChunk(ctx context.Context, job *entities.ChunkJob) error
}
