package notifier

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// Notifier pushes lifecycle events to the owning user's private channel.
// Delivery is best-effort with no cross-event ordering, clients reconcile
// counts with max() semantics.
//
//go:generate mockgen -source=abstract.go -destination=abstract_mock.go -package=notifier
type Notifier interface {
	FileChunked(ctx context.Context, userID string, event *entities.FileChunkedEvent) error
	ChunkProcessed(ctx context.Context, userID string, event *entities.ChunkProcessedEvent) error
}
