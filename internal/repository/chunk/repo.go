package chunk

import (
	"context"
	"fmt"

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

// Create records a PENDING ledger row. Callers must do this before the
// matching job is enqueued so a consumer can always find its ledger row.
func (r *Repo) Create(ctx context.Context, fileID int64, chunkNumber, lineCount int) (int64, error) {
	var id int64
	err := r.db.Client().QueryRowContext(ctx, `
		INSERT INTO chunks (file_id, chunk_number, line_count)
		VALUES ($1, $2, $3) RETURNING id`,
		fileID, chunkNumber, lineCount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error create chunk record: %w", err)
	}
	return id, nil
}

// MarkDone transitions the chunk to DONE inside the caller's transaction.
// Re-marking an already DONE chunk is a no-op, not an error.
func (r *Repo) MarkDone(ctx context.Context, tx *sqlx.Tx, fileID int64, chunkNumber int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE chunks SET status = $1 WHERE file_id = $2 AND chunk_number = $3`,
		entities.ChunkStatusDone, fileID, chunkNumber)
	if err != nil {
		return fmt.Errorf("error mark chunk done: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: file %d chunk %d", entities.ErrChunkNotFound, fileID, chunkNumber)
	}
	return nil
}

// CountByFile counts the ledger by status. Plain reads, safe concurrently
// with in-flight status updates.
func (r *Repo) CountByFile(ctx context.Context, fileID int64) (total, done int, err error) {
	err = r.db.Client().QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM chunks WHERE file_id = $2`,
		entities.ChunkStatusDone, fileID).Scan(&total, &done)
	if err != nil {
		return 0, 0, fmt.Errorf("error count chunks: %w", err)
	}
	return total, done, nil
}

// ProgressByOwner joins files and chunks into per-file totals for every file
// the user owns. Files without dispatched chunks come back with zero counts,
// the sentinel for unknown totals is applied by the progress service.
func (r *Repo) ProgressByOwner(ctx context.Context, createdBy string) ([]*entities.FileProgress, error) {
	rows, err := r.db.Client().QueryxContext(ctx, `
		SELECT f.id AS file_id,
		       f.file_name,
		       f.created_at,
		       f.chunking_completed,
		       COUNT(c.id) AS total_chunks,
		       COUNT(c.id) FILTER (WHERE c.status = $1) AS done_chunks
		FROM files f
		LEFT JOIN chunks c ON c.file_id = f.id
		WHERE f.created_by = $2
		GROUP BY f.id
		ORDER BY f.created_at DESC`,
		entities.ChunkStatusDone, createdBy)
	if err != nil {
		return nil, fmt.Errorf("error get progress by owner: %w", err)
	}
	defer rows.Close()
	var result []*entities.FileProgress
	for rows.Next() {
		var progress entities.FileProgress
		if err = rows.StructScan(&progress); err != nil {
			return nil, fmt.Errorf("error scan progress row: %w", err)
		}
		result = append(result, &progress)
	}
	return result, rows.Err()
}

func (r *Repo) GetByFile(ctx context.Context, fileID int64) ([]*entities.Chunk, error) {
	rows, err := r.db.Client().QueryxContext(ctx,
		`SELECT * FROM chunks WHERE file_id = $1 ORDER BY chunk_number`, fileID)
	if err != nil {
		return nil, fmt.Errorf("error get chunks: %w", err)
	}
	defer rows.Close()
	var result []*entities.Chunk
	for rows.Next() {
		var chunk entities.Chunk
		if err = rows.StructScan(&chunk); err != nil {
			return nil, fmt.Errorf("error scan chunk row: %w", err)
		}
		result = append(result, &chunk)
	}
	return result, rows.Err()
}
