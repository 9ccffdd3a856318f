package entities

import (
	"fmt"
	"time"
)

const (
	EventFileChunked    = "file-chunked"
	EventChunkProcessed = "chunk-processed"
)

// FileChunkedEvent is published once per file, when splitting finishes.
// From this point totalChunks is final and progress is a meaningful fraction.
type FileChunkedEvent struct {
	FileID      int64     `json:"fileId"`
	FileName    string    `json:"fileName"`
	CreatedAt   time.Time `json:"createdAt"`
	TotalChunks int       `json:"totalChunks"`
	DoneChunks  int       `json:"doneChunks"`
}

func (e *FileChunkedEvent) Validate() error {
	return validateCounts(e.FileID, e.FileName, e.TotalChunks, e.DoneChunks)
}

// ChunkProcessedEvent is published once per processed chunk. Events carry no
// ordering guarantee, clients reconcile with max() semantics on the counts.
type ChunkProcessedEvent struct {
	FileID            int64     `json:"fileId"`
	FileName          string    `json:"fileName"`
	CreatedAt         time.Time `json:"createdAt"`
	TotalChunks       int       `json:"totalChunks"`
	DoneChunks        int       `json:"doneChunks"`
	ChunkingCompleted bool      `json:"chunkingCompleted"`
}

func (e *ChunkProcessedEvent) Validate() error {
	return validateCounts(e.FileID, e.FileName, e.TotalChunks, e.DoneChunks)
}

func validateCounts(fileID int64, fileName string, total, done int) error {
	if fileID <= 0 {
		return fmt.Errorf("%w: missing file id", ErrInvalidEventPayload)
	}
	if fileName == "" {
		return fmt.Errorf("%w: missing file name", ErrInvalidEventPayload)
	}
	if total < 0 && total != TotalChunksUnknown {
		return fmt.Errorf("%w: negative total chunks", ErrInvalidEventPayload)
	}
	if done < 0 {
		return fmt.Errorf("%w: negative done chunks", ErrInvalidEventPayload)
	}
	if total >= 0 && done > total {
		return fmt.Errorf("%w: done chunks exceed total", ErrInvalidEventPayload)
	}
	return nil
}
