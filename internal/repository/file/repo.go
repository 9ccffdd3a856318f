package file

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/storage/database"
)

type Repo struct {
	db database.DBConnector
}

func InitRepo(db database.DBConnector) *Repo {
	return &Repo{db: db}
}

// Create inserts the file record and returns its server-assigned id. The
// record exists before any bytes reach object storage.
func (r *Repo) Create(ctx context.Context, fileName, createdBy string) (int64, error) {
	var id int64
	err := r.db.Client().QueryRowContext(ctx, `
		INSERT INTO files (file_name, created_by)
		VALUES ($1, $2) RETURNING id`,
		fileName, createdBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error create file record: %w", err)
	}
	return id, nil
}

func (r *Repo) GetByID(ctx context.Context, fileID int64) (*entities.File, error) {
	var file entities.File
	err := r.db.Client().QueryRowxContext(ctx, `SELECT * FROM files WHERE id = $1`, fileID).StructScan(&file)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error get file: %w", err)
	}
	return &file, nil
}

func (r *Repo) SetChunkingCompleted(ctx context.Context, fileID int64) error {
	_, err := r.db.Client().ExecContext(ctx,
		`UPDATE files SET chunking_completed = TRUE WHERE id = $1`, fileID)
	return err
}

// MarkEmailSent flips the email_sent flag and reports whether this call won
// the flip. Concurrent duplicate chunk deliveries race here, only the winner
// sends the completion notice.
func (r *Repo) MarkEmailSent(ctx context.Context, fileID int64) (bool, error) {
	res, err := r.db.Client().ExecContext(ctx,
		`UPDATE files SET email_sent = TRUE WHERE id = $1 AND email_sent = FALSE`, fileID)
	if err != nil {
		return false, fmt.Errorf("error mark email sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
