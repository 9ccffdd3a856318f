package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/storage/database"

	"github.com/jmoiron/sqlx"
)

type Repo struct {
	db database.DBConnector
}

func InitRepo(db database.DBConnector) *Repo {
	return &Repo{db: db}
}

// InsertBatch writes a batch of contacts with a single multi-row statement
// inside the caller's transaction. Callers bound the batch size, one
// statement per batch keeps the payload small.
func (r *Repo) InsertBatch(ctx context.Context, tx *sqlx.Tx, contacts []*entities.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	placeholders := make([]string, 0, len(contacts))
	args := make([]any, 0, len(contacts)*4)
	for i, c := range contacts {
		base := i * 4
		placeholders = append(placeholders,
			fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, c.Email, c.FirstName, c.LastName, c.CreatedBy)
	}
	query := `INSERT INTO contacts (email, first_name, last_name, created_by) VALUES ` +
		strings.Join(placeholders, ", ")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error insert contacts batch: %w", err)
	}
	return nil
}

func (r *Repo) ListByOwner(ctx context.Context, createdBy string, limit, offset int) ([]*entities.Contact, error) {
	rows, err := r.db.Client().QueryxContext(ctx, `
		SELECT * FROM contacts
		WHERE created_by = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		createdBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error list contacts: %w", err)
	}
	defer rows.Close()
	var result []*entities.Contact
	for rows.Next() {
		var contact entities.Contact
		if err = rows.StructScan(&contact); err != nil {
			return nil, fmt.Errorf("error scan contact row: %w", err)
		}
		result = append(result, &contact)
	}
	return result, rows.Err()
}

func (r *Repo) CountByOwner(ctx context.Context, createdBy string) (int, error) {
	var count int
	err := r.db.Client().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE created_by = $1`, createdBy).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error count contacts: %w", err)
	}
	return count, nil
}
