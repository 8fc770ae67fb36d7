// Package usecase implements the chat user registry.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/binbot/internal/database"
	apperrors "github.com/allisson/binbot/internal/errors"
	"github.com/allisson/binbot/internal/user/domain"
)

// maxUsernameLength matches the width of chat_users.username.
const maxUsernameLength = 255

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

// UseCase defines the user registry business logic.
type UseCase interface {
	// Register is idempotent: an existing user is returned with created=false.
	Register(ctx context.Context, externalID, username string) (user *domain.User, created bool, err error)
	IsRegistered(ctx context.Context, externalID string) (bool, error)
}

// UserUseCase handles chat user registration.
type UserUseCase struct {
	txManager database.TxManager
	userRepo  UserRepository
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(txManager database.TxManager, userRepo UserRepository) UseCase {
	return &UserUseCase{
		txManager: txManager,
		userRepo:  userRepo,
	}
}

// Register stores a user on first contact. The lookup and the insert share a
// transaction.
func (u *UserUseCase) Register(ctx context.Context, externalID, username string) (*domain.User, bool, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, false, domain.ErrExternalIDRequired
	}

	var (
		user    *domain.User
		created bool
	)
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := u.userRepo.GetByExternalID(ctx, externalID)
		if err == nil {
			user = existing
			return nil
		}
		if !apperrors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return apperrors.Wrap(err, "failed to generate user id")
		}

		if len(username) > maxUsernameLength {
			username = username[:maxUsernameLength]
		}
		user = &domain.User{
			ID:         id,
			ExternalID: externalID,
			Username:   username,
			CreatedAt:  time.Now().UTC(),
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err == nil {
		return user, created, nil
	}

	// Lost a race with a concurrent /register from the same user. The
	// transaction is gone, so read the winner outside of it.
	if apperrors.Is(err, domain.ErrUserAlreadyExists) {
		existing, getErr := u.userRepo.GetByExternalID(ctx, externalID)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	return nil, false, err
}

// IsRegistered reports whether externalID has registered.
func (u *UserUseCase) IsRegistered(ctx context.Context, externalID string) (bool, error) {
	_, err := u.userRepo.GetByExternalID(ctx, strings.TrimSpace(externalID))
	switch {
	case err == nil:
		return true, nil
	case apperrors.Is(err, domain.ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}
