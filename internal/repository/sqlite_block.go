package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteBlockRepo implements BlockRepo using a SQLite database.
type SQLiteBlockRepo struct {
	db *sql.DB
}

// NewSQLiteBlockRepo creates a new SQLiteBlockRepo.
func NewSQLiteBlockRepo(db *sql.DB) *SQLiteBlockRepo {
	return &SQLiteBlockRepo{db: db}
}

func (r *SQLiteBlockRepo) GetBlock(ctx context.Context, id string) (*Block, error) {
	query := `SELECT id, content, created_at, updated_at FROM blocks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var b Block
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&b.ID, &b.Content, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("block %q: %w", id, ErrBlockNotFound)
		}
		return nil, fmt.Errorf("scanning block: %w", err)
	}

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &b, nil
}

func (r *SQLiteBlockRepo) CreateBlock(ctx context.Context, id, content string) error {
	now := nowUTC()
	query := `INSERT INTO blocks (id, content, created_at, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id, content, now, now); err != nil {
		return fmt.Errorf("inserting block: %w", err)
	}
	return nil
}

func (r *SQLiteBlockRepo) UpdateBlock(ctx context.Context, id, content string) error {
	query := `UPDATE blocks SET content = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, content, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating block: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating block: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("block %q: %w", id, ErrBlockNotFound)
	}
	return nil
}

func (r *SQLiteBlockRepo) DeleteBlock(ctx context.Context, id string) error {
	query := `DELETE FROM blocks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting block: %w", err)
	}
	return nil
}

func (r *SQLiteBlockRepo) ListBlocks(ctx context.Context) ([]*Block, error) {
	query := `SELECT id, content, created_at, updated_at FROM blocks ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*Block
	for rows.Next() {
		var b Block
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&b.ID, &b.Content, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning block row: %w", err)
		}
		var parseErr error
		b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}
	return blocks, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
