package queue

import (
	"context"

	"github.com/mike-pete/cms/internal/entities"
)

// Publisher enqueues chunk jobs. Delivery is at-least-once with no ordering
// guarantee across chunks, consumers must tolerate duplicates.
//
//go:generate mockgen -source=abstract.go -destination=abstract_mock.go -package=queue
type Publisher interface {
	PublishChunk(ctx context.Context, job *entities.ChunkJob) error
}

// ChunkHandler processes one delivered chunk job. Returning an error leaves
// the message on the queue for redelivery.
type ChunkHandler interface {
	HandleChunk(ctx context.Context, job *entities.ChunkJob) error
}
