package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mike-pete/cms/internal/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RandomOwner returns a unique owner identity so tests cannot observe each
// other's rows.
func RandomOwner() string {
	return uuid.NewString() + "@example.com"
}

// GenerateCSV builds a csv body with the given header and rowCount data rows.
// Rows get predictable addresses so tests can assert on the inserted set.
func GenerateCSV(header string, rowCount int) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for i := 0; i < rowCount; i++ {
		sb.WriteString(fmt.Sprintf("user%d@example.com,First%d,Last%d\n", i, i, i))
	}
	return sb.String()
}

func CreateFile(t *testing.T, container *TestContainer, owner, fileName string) *entities.File {
	id, err := container.RepoFile.Create(container.Ctx, fileName, owner)
	require.NoError(t, err)
	require.NotZero(t, id)

	fl, err := container.RepoFile.GetByID(container.Ctx, id)
	require.NoError(t, err)
	return fl
}

func DefaultMapping() entities.ColumnMapping {
	return entities.ColumnMapping{
		Email:     "email",
		FirstName: "first name",
		LastName:  "last name",
	}
}
