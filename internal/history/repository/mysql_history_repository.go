package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// MySQLHistoryRepository implements history persistence for MySQL. UUIDs are
// stored as BINARY(16).
type MySQLHistoryRepository struct {
	db *sql.DB
}

// NewMySQLHistoryRepository creates a new MySQL history repository.
func NewMySQLHistoryRepository(db *sql.DB) *MySQLHistoryRepository {
	return &MySQLHistoryRepository{db: db}
}

// Create inserts a history entry.
func (m *MySQLHistoryRepository) Create(ctx context.Context, entry *historyDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal history entry id")
	}

	query := `INSERT INTO history_entries (id, kind, value, created_at) VALUES (?, ?, ?, ?)`

	if _, err := querier.ExecContext(ctx, query, id, string(entry.Kind), entry.Value, entry.CreatedAt); err != nil {
		return apperrors.Wrap(err, "failed to create history entry")
	}
	return nil
}

// DeleteOlderThan removes entries created before olderThan. When dryRun is
// true it only counts them.
func (m *MySQLHistoryRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		var count int64
		query := `SELECT COUNT(*) FROM history_entries WHERE created_at < ?`
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count history entries")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM history_entries WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete history entries")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}
