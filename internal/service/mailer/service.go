package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/mike-pete/cms/internal/logger"
)

// Service delivers the processing-complete notice over plain SMTP.
type Service struct {
	addr   string
	from   string
	logger logger.AppLogger
}

var _ CompletionSender = (*Service)(nil)

func NewService(addr, from string, log logger.AppLogger) *Service {
	return &Service{
		addr:   addr,
		from:   from,
		logger: log.With(slog.String("service", "mailer")),
	}
}

func (s *Service) SendProcessingComplete(ctx context.Context, to, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(s.from, to, fileName, time.Now())
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("error send completion email: %w", err)
	}
	s.logger.Info("completion email sent",
		slog.String("to", to),
		slog.String("file_name", fileName))
	return nil
}

func buildMessage(from, to, fileName string, processedAt time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: CSV Processing Complete\r\n")
	b.WriteString("\r\n")
	b.WriteString("Good news! We've successfully processed your CSV file.\r\n")
	b.WriteString("\r\n")
	b.WriteString("File name: " + fileName + "\r\n")
	b.WriteString("Processed on: " + processedAt.Format("January 2, 2006") + "\r\n")
	b.WriteString("\r\n")
	b.WriteString("Your data is now ready to use in your dashboard.\r\n")
	return []byte(b.String())
}
