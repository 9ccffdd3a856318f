package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/queue"
	"github.com/mike-pete/cms/internal/repository/chunk"
	"github.com/mike-pete/cms/internal/repository/contact"
	"github.com/mike-pete/cms/internal/repository/file"
	"github.com/mike-pete/cms/internal/service/mailer"
	"github.com/mike-pete/cms/internal/service/notifier"
	"github.com/mike-pete/cms/internal/storage/database"
)

type Config struct {
	// BatchSize bounds the number of contacts per insert statement, smaller
	// than the chunk size
	BatchSize int
}

type Service struct {
	logger    logger.AppLogger
	db        database.DBConnector
	files     *file.Repo
	chunks    *chunk.Repo
	contacts  *contact.Repo
	notifier  notifier.Notifier
	mailer    mailer.CompletionSender
	batchSize int
}

var (
	_ ChunkProcessor     = (*Service)(nil)
	_ queue.ChunkHandler = (*Service)(nil)
)

func NewService(
	conf *Config,
	log logger.AppLogger,
	db database.DBConnector,
	files *file.Repo,
	chunks *chunk.Repo,
	contacts *contact.Repo,
	eventNotifier notifier.Notifier,
	completionSender mailer.CompletionSender,
) *Service {
	batchSize := conf.BatchSize
	if batchSize <= 0 {
		batchSize = entities.BatchSize
	}
	return &Service{
		logger:    log.With(slog.String("service", "processor")),
		db:        db,
		files:     files,
		chunks:    chunks,
		contacts:  contacts,
		notifier:  eventNotifier,
		mailer:    completionSender,
		batchSize: batchSize,
	}
}

// HandleChunk validates and ingests one chunk. All batch inserts and the
// PENDING->DONE transition commit as one transaction, so a retried delivery
// either sees the chunk fully ingested or not at all. Contact rows are not
// deduplicated across deliveries, a true concurrent double-delivery can
// insert twice.
func (s *Service) HandleChunk(ctx context.Context, job *entities.ChunkJob) error {
	if err := job.ColumnMapping.Validate(); err != nil {
		return err
	}

	contacts, rowErrors, err := parseChunk(job.CSV, job.ColumnMapping)
	if err != nil {
		// unparseable chunk structure, fail loudly and rely on redelivery
		return fmt.Errorf("error parse chunk %d of file %d: %w", job.ChunkNumber, job.FileID, err)
	}
	for _, rowErr := range rowErrors {
		// TODO save row errors to db once a retention policy is decided
		s.logger.Info("row rejected",
			slog.Int64("file_id", job.FileID),
			slog.Int("chunk_number", job.ChunkNumber),
			slog.Int("row_index", rowErr.RowIndex),
			slog.String("reason", rowErr.Reason))
	}
	for _, c := range contacts {
		c.CreatedBy = job.CreatedByID
	}

	if err = s.ingestChunk(ctx, job, contacts); err != nil {
		return err
	}
	s.logger.Info("chunk processed",
		slog.Int64("file_id", job.FileID),
		slog.Int("chunk_number", job.ChunkNumber),
		slog.Int("valid_rows", len(contacts)),
		slog.Int("invalid_rows", len(rowErrors)))

	// everything below runs after commit: failures here are logged, never
	// returned, a redelivery now would double-insert the chunk's rows
	s.publishProgress(ctx, job)
	return nil
}

func (s *Service) ingestChunk(ctx context.Context, job *entities.ChunkJob, contacts []*entities.Contact) error {
	tx, err := s.db.Client().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error begin chunk transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for start := 0; start < len(contacts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(contacts) {
			end = len(contacts)
		}
		if err = s.contacts.InsertBatch(ctx, tx, contacts[start:end]); err != nil {
			return err
		}
	}
	if err = s.chunks.MarkDone(ctx, tx, job.FileID, job.ChunkNumber); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error commit chunk transaction: %w", err)
	}
	return nil
}

func (s *Service) publishProgress(ctx context.Context, job *entities.ChunkJob) {
	storedFile, err := s.files.GetByID(ctx, job.FileID)
	if err != nil {
		s.logger.Error("error load file for progress update", err, slog.Int64("file_id", job.FileID))
		return
	}
	total, done, err := s.chunks.CountByFile(ctx, job.FileID)
	if err != nil {
		s.logger.Error("error recompute progress", err, slog.Int64("file_id", job.FileID))
		return
	}

	event := &entities.ChunkProcessedEvent{
		FileID:            storedFile.ID,
		FileName:          storedFile.FileName,
		CreatedAt:         storedFile.CreatedAt,
		TotalChunks:       total,
		DoneChunks:        done,
		ChunkingCompleted: storedFile.ChunkingCompleted,
	}
	if err = s.notifier.ChunkProcessed(ctx, storedFile.CreatedBy, event); err != nil {
		s.logger.Error("error publish chunk-processed event", err, slog.Int64("file_id", job.FileID))
	}

	if storedFile.ChunkingCompleted && done == total {
		s.notifyCompletion(ctx, storedFile)
	}
}

// notifyCompletion fires the terminal side effect when the file is fully
// ingested. The email_sent flag makes it effectively-once, duplicate
// deliveries lose the flag race and skip the send.
func (s *Service) notifyCompletion(ctx context.Context, storedFile *entities.File) {
	won, err := s.files.MarkEmailSent(ctx, storedFile.ID)
	if err != nil {
		s.logger.Error("error mark email sent", err, slog.Int64("file_id", storedFile.ID))
		return
	}
	if !won {
		return
	}
	if err = s.mailer.SendProcessingComplete(ctx, storedFile.CreatedBy, storedFile.FileName); err != nil {
		s.logger.Error("error send completion email", err, slog.Int64("file_id", storedFile.ID))
		return
	}
	s.logger.Info("file fully ingested", slog.Int64("file_id", storedFile.ID))
}
