// Package repository persists history entries.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// PostgreSQLHistoryRepository implements history persistence for PostgreSQL.
type PostgreSQLHistoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLHistoryRepository creates a new PostgreSQL history repository.
func NewPostgreSQLHistoryRepository(db *sql.DB) *PostgreSQLHistoryRepository {
	return &PostgreSQLHistoryRepository{db: db}
}

// Create inserts a history entry.
func (p *PostgreSQLHistoryRepository) Create(ctx context.Context, entry *historyDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO history_entries (id, kind, value, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, entry.ID, string(entry.Kind), entry.Value, entry.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create history entry")
	}
	return nil
}

// DeleteOlderThan removes entries created before olderThan. When dryRun is
// true it only counts them.
func (p *PostgreSQLHistoryRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		var count int64
		query := `SELECT COUNT(*) FROM history_entries WHERE created_at < $1`
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count history entries")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM history_entries WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete history entries")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}
