package entities

import "time"

type ChunkStatus string

const (
	ChunkStatusPending ChunkStatus = "PENDING"
	ChunkStatusDone    ChunkStatus = "DONE"
)

// Chunk is one ledger row. Chunk numbers are contiguous per file, assigned
// once by the splitter in read order. Status only ever moves PENDING -> DONE.
type Chunk struct {
	ID          int64       `json:"id" db:"id"`
	FileID      int64       `json:"file_id" db:"file_id"`
	ChunkNumber int         `json:"chunk_number" db:"chunk_number"`
	LineCount   int         `json:"line_count" db:"line_count"`
	Status      ChunkStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
