package entities

import "time"

// TotalChunksUnknown marks a file whose splitter has not finished and has
// dispatched no chunks yet. Clients must not render such a file as 0/0
// complete.
const TotalChunksUnknown = -1

type FileProgress struct {
	FileID            int64     `json:"fileId" db:"file_id"`
	FileName          string    `json:"fileName" db:"file_name"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	TotalChunks       int       `json:"totalChunks" db:"total_chunks"`
	DoneChunks        int       `json:"doneChunks" db:"done_chunks"`
	ChunkingCompleted bool      `json:"chunkingCompleted" db:"chunking_completed"`
}
