package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/queue"
	"github.com/mike-pete/cms/internal/repository/chunk"
	"github.com/mike-pete/cms/internal/repository/file"
	"github.com/mike-pete/cms/internal/service/notifier"
	"github.com/mike-pete/cms/internal/storage/filestore"
)

type Config struct {
	// ChunkSize is the number of data lines per chunk, the header line is
	// replicated into every chunk on top of it
	ChunkSize int
}

type Service struct {
	ctx       context.Context
	logger    logger.AppLogger
	files     *file.Repo
	chunks    *chunk.Repo
	store     filestore.FileStore
	publisher queue.Publisher
	notifier  notifier.Notifier
	chunkSize int
}

var _ FileSplitter = (*Service)(nil)

func NewService(
	ctx context.Context,
	conf *Config,
	log logger.AppLogger,
	files *file.Repo,
	chunks *chunk.Repo,
	store filestore.FileStore,
	publisher queue.Publisher,
	eventNotifier notifier.Notifier,
) *Service {
	chunkSize := conf.ChunkSize
	if chunkSize <= 0 {
		chunkSize = entities.ChunkSize
	}
	return &Service{
		ctx:       ctx,
		logger:    log.With(slog.String("service", "splitter")),
		files:     files,
		chunks:    chunks,
		store:     store,
		publisher: publisher,
		notifier:  eventNotifier,
		chunkSize: chunkSize,
	}
}

// ProcessFile splits the stored CSV into chunks and dispatches one job per
// chunk. For each boundary the ledger row is recorded first, then the job is
// published in the background so a slow queue does not stall line reading.
// The publishes are collected and awaited before the file is marked fully
// chunked.
func (s *Service) ProcessFile(ctx context.Context, fileID int64, userID string, mapping entities.ColumnMapping) error {
	if err := mapping.Validate(); err != nil {
		return err
	}
	storedFile, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if storedFile.CreatedBy != userID {
		return entities.ErrNotOwner
	}
	existing, _, err := s.chunks.CountByFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("error check existing chunks: %w", err)
	}
	if existing > 0 {
		return entities.ErrChunksAlreadyQueued
	}

	body, err := s.store.Read(ctx, fileID)
	if err != nil {
		return fmt.Errorf("error read file from storage: %w", err)
	}
	defer body.Close()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errList []error
	)
	dispatched, splitErr := splitLines(body, s.chunkSize, func(chunkNumber int, header string, lines []string) error {
		csvText := header + "\n" + strings.Join(lines, "\n")
		// ledger row must exist before the job is enqueued
		if _, err := s.chunks.Create(ctx, fileID, chunkNumber, len(lines)); err != nil {
			return err
		}
		job := &entities.ChunkJob{
			CSV:           csvText,
			ChunkNumber:   chunkNumber,
			FileID:        fileID,
			CreatedByID:   storedFile.CreatedBy,
			ColumnMapping: mapping,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.publisher.PublishChunk(ctx, job); err != nil {
				mu.Lock()
				errList = append(errList, fmt.Errorf("error publish chunk %d: %w", job.ChunkNumber, err))
				mu.Unlock()
			}
		}()
		return nil
	})
	wg.Wait()
	if splitErr != nil {
		return fmt.Errorf("error split file %d: %w", fileID, splitErr)
	}
	if len(errList) > 0 {
		// already-recorded chunks stay in the ledger, accepted partial
		// failure under at-least-once dispatch
		return errList[0]
	}

	total, done, err := s.chunks.CountByFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("error count dispatched chunks: %w", err)
	}
	if total != dispatched {
		return fmt.Errorf("%w: ledger %d, dispatched %d", entities.ErrChunkCountMismatch, total, dispatched)
	}
	if err = s.files.SetChunkingCompleted(ctx, fileID); err != nil {
		return fmt.Errorf("error mark chunking completed: %w", err)
	}

	event := &entities.FileChunkedEvent{
		FileID:      fileID,
		FileName:    storedFile.FileName,
		CreatedAt:   storedFile.CreatedAt,
		TotalChunks: total,
		DoneChunks:  done,
	}
	if err = s.notifier.FileChunked(ctx, userID, event); err != nil {
		// progress is still reachable by polling
		s.logger.Error("error publish file-chunked event", err, slog.Int64("file_id", fileID))
	}
	s.logger.Info("file fully chunked",
		slog.Int64("file_id", fileID),
		slog.Int("total_chunks", total))
	return nil
}
