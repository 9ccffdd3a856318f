package entities

// ChunkJob is the queue payload for one chunk. CSV holds the header line
// plus the chunk's data lines, so a consumer needs nothing but the job to
// process a chunk.
type ChunkJob struct {
	CSV           string        `json:"csv"`
	ChunkNumber   int           `json:"chunkNumber"`
	FileID        int64         `json:"fileId"`
	CreatedByID   string        `json:"createdById"`
	ColumnMapping ColumnMapping `json:"columnMapping"`
}

// RowError records one rejected row of a chunk. RowIndex is 0-based over
// the chunk's data rows.
type RowError struct {
	RowIndex int    `json:"rowIndex"`
	Reason   string `json:"reason"`
}
