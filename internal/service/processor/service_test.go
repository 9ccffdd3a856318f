package processor_test

import (
	"testing"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/service/mailer"
	"github.com/mike-pete/cms/internal/service/notifier"
	"github.com/mike-pete/cms/internal/service/processor"
	testhelpers "github.com/mike-pete/cms/internal/test_helpers"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processorEnv struct {
	container *testhelpers.TestContainer
	notifier  *notifier.MockNotifier
	mailer    *mailer.MockCompletionSender
	service   *processor.Service
}

func newProcessorEnv(t *testing.T, batchSize int) *processorEnv {
	container := testhelpers.GetClean(t)
	ctrl := gomock.NewController(t)
	eventNotifier := notifier.NewMockNotifier(ctrl)
	completionSender := mailer.NewMockCompletionSender(ctrl)
	service := processor.NewService(&processor.Config{BatchSize: batchSize},
		container.Logger, container.DB, container.RepoFile, container.RepoChunk,
		container.RepoContact, eventNotifier, completionSender)
	return &processorEnv{
		container: container,
		notifier:  eventNotifier,
		mailer:    completionSender,
		service:   service,
	}
}

func chunkJob(fileID int64, chunkNumber int, csvText string) *entities.ChunkJob {
	return &entities.ChunkJob{
		CSV:           csvText,
		ChunkNumber:   chunkNumber,
		FileID:        fileID,
		CreatedByID:   "alice@example.com",
		ColumnMapping: testhelpers.DefaultMapping(),
	}
}

func TestHandleChunk_IngestsFile(t *testing.T) {
	// given: a fully chunked file with 2 ledger rows
	env := newProcessorEnv(t, 2)
	stored := testhelpers.CreateFile(t, env.container, "alice@example.com", "contacts.csv")
	for i := 0; i < 2; i++ {
		_, err := env.container.RepoChunk.Create(env.container.Ctx, stored.ID, i, 3)
		require.NoError(t, err)
	}
	require.NoError(t, env.container.RepoFile.SetChunkingCompleted(env.container.Ctx, stored.ID))

	var events []*entities.ChunkProcessedEvent
	env.notifier.EXPECT().ChunkProcessed(gomock.Any(), "alice@example.com", gomock.Any()).Times(2).
		DoAndReturn(func(_ any, _ string, event *entities.ChunkProcessedEvent) error {
			events = append(events, event)
			return nil
		})
	env.mailer.EXPECT().SendProcessingComplete(gomock.Any(), "alice@example.com", "contacts.csv").
		Return(nil).Times(1)

	// when: both chunks arrive, batch size smaller than row count
	err := env.service.HandleChunk(env.container.Ctx, chunkJob(stored.ID, 0,
		"email,first name,last name\na@example.com,A,One\nb@example.com,B,Two\nc@example.com,C,Three"))
	require.NoError(t, err)
	err = env.service.HandleChunk(env.container.Ctx, chunkJob(stored.ID, 1,
		"email,first name,last name\nd@example.com,D,Four\ne@example.com,E,Five\nf@example.com,F,Six"))
	require.NoError(t, err)

	// then
	count, err := env.container.RepoContact.CountByOwner(env.container.Ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 6, count)

	total, done, err := env.container.RepoChunk.CountByFile(env.container.Ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, 2, done)

	require.Len(t, events, 2)
	require.Equal(t, 1, events[0].DoneChunks)
	require.Equal(t, 2, events[1].DoneChunks)
	for _, event := range events {
		require.Equal(t, stored.ID, event.FileID)
		require.Equal(t, 2, event.TotalChunks)
		require.True(t, event.ChunkingCompleted)
	}

	reloaded, err := env.container.RepoFile.GetByID(env.container.Ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, reloaded.EmailSent)
}

func TestHandleChunk_DuplicateDelivery(t *testing.T) {
	// given: a single-chunk file already fully ingested
	env := newProcessorEnv(t, 1000)
	stored := testhelpers.CreateFile(t, env.container, "alice@example.com", "contacts.csv")
	_, err := env.container.RepoChunk.Create(env.container.Ctx, stored.ID, 0, 1)
	require.NoError(t, err)
	require.NoError(t, env.container.RepoFile.SetChunkingCompleted(env.container.Ctx, stored.ID))

	env.notifier.EXPECT().ChunkProcessed(gomock.Any(), "alice@example.com", gomock.Any()).
		Return(nil).Times(2)
	env.mailer.EXPECT().SendProcessingComplete(gomock.Any(), "alice@example.com", "contacts.csv").
		Return(nil).Times(1)

	job := chunkJob(stored.ID, 0, "email\na@example.com")
	require.NoError(t, env.service.HandleChunk(env.container.Ctx, job))

	// when: the queue redelivers the same chunk
	require.NoError(t, env.service.HandleChunk(env.container.Ctx, job))

	// then: rows are not deduplicated, the status stays DONE and the
	// completion email stays sent exactly once
	count, err := env.container.RepoContact.CountByOwner(env.container.Ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	total, done, err := env.container.RepoChunk.CountByFile(env.container.Ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, 1, done)
}

func TestHandleChunk_InvalidRowsExcluded(t *testing.T) {
	// given
	env := newProcessorEnv(t, 1000)
	stored := testhelpers.CreateFile(t, env.container, "alice@example.com", "contacts.csv")
	_, err := env.container.RepoChunk.Create(env.container.Ctx, stored.ID, 0, 3)
	require.NoError(t, err)

	env.notifier.EXPECT().ChunkProcessed(gomock.Any(), "alice@example.com", gomock.Any()).Return(nil)

	// when: one of three rows has a broken address
	err = env.service.HandleChunk(env.container.Ctx, chunkJob(stored.ID, 0,
		"email\na@example.com\nnot-an-email\nb@example.com"))

	// then: the chunk still completes with the valid rows only
	require.NoError(t, err)
	count, err := env.container.RepoContact.CountByOwner(env.container.Ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, done, err := env.container.RepoChunk.CountByFile(env.container.Ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 1, done)
}

func TestHandleChunk_MissingLedgerRow(t *testing.T) {
	// given: a job whose ledger row was never recorded
	env := newProcessorEnv(t, 1000)
	stored := testhelpers.CreateFile(t, env.container, "alice@example.com", "contacts.csv")

	// when
	err := env.service.HandleChunk(env.container.Ctx, chunkJob(stored.ID, 7, "email\na@example.com"))

	// then: the transaction rolls back, no contacts survive
	require.ErrorIs(t, err, entities.ErrChunkNotFound)
	count, err := env.container.RepoContact.CountByOwner(env.container.Ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestHandleChunk_RejectsBadMapping(t *testing.T) {
	// given
	env := newProcessorEnv(t, 1000)
	job := chunkJob(1, 0, "email\na@example.com")
	job.ColumnMapping = entities.ColumnMapping{}

	// when
	err := env.service.HandleChunk(env.container.Ctx, job)

	// then
	require.ErrorIs(t, err, entities.ErrMappingEmailRequired)
}
