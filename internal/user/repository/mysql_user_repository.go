package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	"github.com/allisson/binbot/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO chat_users (id, external_id, username, created_at)
			  VALUES (?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, uuidBytes, user.ExternalID, user.Username, user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByExternalID retrieves a user by chat platform id
func (r *MySQLUserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	var user domain.User
	var uuidBytes []byte
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, external_id, username, created_at
			  FROM chat_users WHERE external_id = ?`

	err := querier.QueryRowContext(ctx, query, externalID).Scan(
		&uuidBytes, &user.ExternalID, &user.Username, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by external id")
	}

	if err := user.ID.UnmarshalBinary(uuidBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}
