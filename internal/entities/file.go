package entities

import "time"

const (
	// ChunkSize is the default number of data lines per dispatched chunk
	ChunkSize = 5000
	// BatchSize is the default number of contacts per insert statement
	BatchSize = 1000
)

type File struct {
	ID                int64     `json:"id" db:"id"`
	FileName          string    `json:"file_name" db:"file_name"`
	CreatedBy         string    `json:"created_by" db:"created_by"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	ChunkingCompleted bool      `json:"chunking_completed" db:"chunking_completed"`
	EmailSent         bool      `json:"email_sent" db:"email_sent"`
}

type UploadTicket struct {
	FileID       int64  `json:"fileId"`
	PresignedURL string `json:"presignedURL"`
}
