// Package repository provides note persistence for PostgreSQL and MySQL.
// Content arrives already encrypted and is stored as bytes.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// PostgreSQLNoteRepository implements note persistence for PostgreSQL.
type PostgreSQLNoteRepository struct {
	db *sql.DB
}

// NewPostgreSQLNoteRepository creates a new PostgreSQL note repository.
func NewPostgreSQLNoteRepository(db *sql.DB) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{db: db}
}

// Upsert inserts the note or replaces the content of the note with the same
// title. The stored id and created_at of an existing note are kept.
func (p *PostgreSQLNoteRepository) Upsert(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO notes (id, title, content, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (title) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(
		ctx,
		query,
		note.ID,
		note.Title,
		note.Ciphertext,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert note")
	}
	return nil
}

// Get retrieves a note by title. Content is left empty; Ciphertext holds the
// stored bytes.
func (p *PostgreSQLNoteRepository) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, created_at, updated_at FROM notes WHERE title = $1`

	var note notesDomain.Note
	err := querier.QueryRowContext(ctx, query, title).Scan(
		&note.ID,
		&note.Title,
		&note.Ciphertext,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notesDomain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note")
	}
	return &note, nil
}

// Delete removes a note by title.
func (p *PostgreSQLNoteRepository) Delete(ctx context.Context, title string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE title = $1`, title)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows count")
	}
	if rows == 0 {
		return notesDomain.ErrNoteNotFound
	}
	return nil
}

// List returns note titles ordered by title.
func (p *PostgreSQLNoteRepository) List(ctx context.Context, offset, limit int) ([]string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT title FROM notes ORDER BY title ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTitles(rows)
}

func scanTitles(rows *sql.Rows) ([]string, error) {
	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note title")
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}
	return titles, nil
}
