package entities

import "errors"

var (
	ErrFileNotFound          = errors.New("file not found")
	ErrNotOwner              = errors.New("file does not belong to user")
	ErrChunksAlreadyQueued   = errors.New("chunks already dispatched for file")
	ErrMappingEmailRequired  = errors.New("column mapping requires an email header")
	ErrEmptyFileBody         = errors.New("file content is empty")
	ErrChunkNotFound         = errors.New("chunk not found in ledger")
	ErrChunkCountMismatch    = errors.New("ledger chunk count does not match dispatched count")
	ErrUnknownEvent          = errors.New("unknown notification event")
	ErrInvalidEventPayload   = errors.New("invalid notification payload")
)
