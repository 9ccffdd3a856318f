package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/repository/chunk"
	"github.com/mike-pete/cms/internal/repository/file"
)

type Service struct {
	logger logger.AppLogger
	files  *file.Repo
	chunks *chunk.Repo
}

var _ ProgressReader = (*Service)(nil)

func NewService(log logger.AppLogger, files *file.Repo, chunks *chunk.Repo) *Service {
	return &Service{
		logger: log.With(slog.String("service", "progress")),
		files:  files,
		chunks: chunks,
	}
}

func (s *Service) FileProgress(ctx context.Context, fileID int64) (*entities.FileProgress, error) {
	storedFile, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	total, done, err := s.chunks.CountByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("error count chunks for file %d: %w", fileID, err)
	}
	result := &entities.FileProgress{
		FileID:            storedFile.ID,
		FileName:          storedFile.FileName,
		CreatedAt:         storedFile.CreatedAt,
		TotalChunks:       total,
		DoneChunks:        done,
		ChunkingCompleted: storedFile.ChunkingCompleted,
	}
	applySentinel(result)
	return result, nil
}

func (s *Service) FilesStatus(ctx context.Context, userID string) ([]*entities.FileProgress, error) {
	result, err := s.chunks.ProgressByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, progress := range result {
		applySentinel(progress)
	}
	return result, nil
}

// applySentinel hides the zero total of a file whose splitter has not
// finished yet. 0/0 with chunking completed stays as is, that file really
// had no data rows and counts as fully ingested.
func applySentinel(progress *entities.FileProgress) {
	if progress.TotalChunks == 0 && !progress.ChunkingCompleted {
		progress.TotalChunks = entities.TotalChunksUnknown
	}
}
