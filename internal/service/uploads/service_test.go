package uploads_test

import (
	"testing"
	"time"

	"github.com/mike-pete/cms/internal/service/uploads"
	"github.com/mike-pete/cms/internal/storage/filestore"
	testhelpers "github.com/mike-pete/cms/internal/test_helpers"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetUploadURL(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	ctrl := gomock.NewController(t)
	store := filestore.NewMockFileStore(ctrl)
	service := uploads.NewService(container.Logger, container.RepoFile, store, time.Hour)

	store.EXPECT().UploadURL(gomock.Any(), gomock.Any(), time.Hour).
		Return("https://bucket.example.com/upload?sig=abc", nil)

	// when
	ticket, err := service.GetUploadURL(container.Ctx, "contacts.csv", "alice@example.com")

	// then: the file record exists before any bytes are uploaded
	require.NoError(t, err)
	require.NotZero(t, ticket.FileID)
	require.Equal(t, "https://bucket.example.com/upload?sig=abc", ticket.PresignedURL)

	stored, err := container.RepoFile.GetByID(container.Ctx, ticket.FileID)
	require.NoError(t, err)
	require.Equal(t, "contacts.csv", stored.FileName)
	require.Equal(t, "alice@example.com", stored.CreatedBy)

	t.Run("should reject blank file name", func(t *testing.T) {
		_, err = service.GetUploadURL(container.Ctx, "   ", "alice@example.com")
		require.Error(t, err)
	})
}
