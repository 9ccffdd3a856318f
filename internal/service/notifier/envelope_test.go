package notifier

import (
	"encoding/json"
	"testing"

	"github.com/mike-pete/cms/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestValidateEnvelope(t *testing.T) {
	t.Run("should accept valid file-chunked payload", func(t *testing.T) {
		data, err := json.Marshal(entities.FileChunkedEvent{
			FileID:      1,
			FileName:    "contacts.csv",
			TotalChunks: 2,
		})
		require.NoError(t, err)
		require.NoError(t, validateEnvelope(&Envelope{Event: entities.EventFileChunked, Data: data}))
	})

	t.Run("should accept valid chunk-processed payload", func(t *testing.T) {
		data, err := json.Marshal(entities.ChunkProcessedEvent{
			FileID:      1,
			FileName:    "contacts.csv",
			TotalChunks: 2,
			DoneChunks:  2,
		})
		require.NoError(t, err)
		require.NoError(t, validateEnvelope(&Envelope{Event: entities.EventChunkProcessed, Data: data}))
	})

	t.Run("should reject unknown event name", func(t *testing.T) {
		err := validateEnvelope(&Envelope{Event: "file-deleted", Data: []byte(`{}`)})
		require.ErrorIs(t, err, entities.ErrUnknownEvent)
	})

	t.Run("should reject malformed payload", func(t *testing.T) {
		err := validateEnvelope(&Envelope{Event: entities.EventFileChunked, Data: []byte(`not json`)})
		require.ErrorIs(t, err, entities.ErrInvalidEventPayload)
	})

	t.Run("should reject payload failing validation", func(t *testing.T) {
		data, err := json.Marshal(entities.FileChunkedEvent{FileName: "contacts.csv"})
		require.NoError(t, err)
		err = validateEnvelope(&Envelope{Event: entities.EventFileChunked, Data: data})
		require.ErrorIs(t, err, entities.ErrInvalidEventPayload)
	})
}
