package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// MySQLNoteRepository implements note persistence for MySQL. UUIDs are stored
// as BINARY(16).
type MySQLNoteRepository struct {
	db *sql.DB
}

// NewMySQLNoteRepository creates a new MySQL note repository.
func NewMySQLNoteRepository(db *sql.DB) *MySQLNoteRepository {
	return &MySQLNoteRepository{db: db}
}

// Upsert inserts the note or replaces the content of the note with the same
// title.
func (m *MySQLNoteRepository) Upsert(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, m.db)

	id, err := note.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal note id")
	}

	query := `INSERT INTO notes (id, title, content, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE content = VALUES(content), updated_at = VALUES(updated_at)`

	_, err = querier.ExecContext(ctx, query, id, note.Title, note.Ciphertext, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert note")
	}
	return nil
}

// Get retrieves a note by title.
func (m *MySQLNoteRepository) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content, created_at, updated_at FROM notes WHERE title = ?`

	var (
		note notesDomain.Note
		id   []byte
	)
	err := querier.QueryRowContext(ctx, query, title).Scan(
		&id,
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

	parsed, err := uuid.FromBytes(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal note id")
	}
	note.ID = parsed

	return &note, nil
}

// Delete removes a note by title.
func (m *MySQLNoteRepository) Delete(ctx context.Context, title string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE title = ?`, title)
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
func (m *MySQLNoteRepository) List(ctx context.Context, offset, limit int) ([]string, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT title FROM notes ORDER BY title ASC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTitles(rows)
}
