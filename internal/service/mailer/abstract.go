package mailer

import "context"

// CompletionSender notifies a file's owner that ingestion finished. Callers
// guard at-most-effectively-once semantics via the file's email_sent flag,
// the sender itself does not dedupe.
//
//go:generate mockgen -source=abstract.go -destination=abstract_mock.go -package=mailer
type CompletionSender interface {
	SendProcessingComplete(ctx context.Context, to, fileName string) error
}
