package uploads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/repository/file"
	"github.com/mike-pete/cms/internal/storage/filestore"
)

type Service struct {
	logger logger.AppLogger
	files  *file.Repo
	store  filestore.FileStore
	ttl    time.Duration
}

var _ UploadManager = (*Service)(nil)

func NewService(log logger.AppLogger, files *file.Repo, store filestore.FileStore, ttl time.Duration) *Service {
	return &Service{
		logger: log.With(slog.String("service", "uploads")),
		files:  files,
		store:  store,
		ttl:    ttl,
	}
}

func (s *Service) GetUploadURL(ctx context.Context, fileName, userID string) (*entities.UploadTicket, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("file name is required")
	}
	fileID, err := s.files.Create(ctx, fileName, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.store.UploadURL(ctx, fileID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("error create upload url for file %d: %w", fileID, err)
	}
	s.logger.Info("upload url issued",
		slog.Int64("file_id", fileID),
		slog.String("file_name", fileName))
	return &entities.UploadTicket{FileID: fileID, PresignedURL: url}, nil
}
