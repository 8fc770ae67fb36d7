package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/binbot/internal/errors"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
	"github.com/allisson/binbot/internal/notes/service"
	"github.com/allisson/binbot/internal/notes/usecase/mocks"
)

func TestNoteUseCase_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Upsert", ctx, mock.MatchedBy(func(n *notesDomain.Note) bool {
			return n.Title == "rules" && string(n.Ciphertext) == "be nice" && n.ID.Version() == 7
		})).Return(nil).Once()

		note, err := uc.Save(ctx, " rules ", "be nice")

		require.NoError(t, err)
		assert.Equal(t, "rules", note.Title)
		assert.Equal(t, "be nice", note.Content)
		repo.AssertExpectations(t)
	})

	t.Run("Error_TitleRequired", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		_, err := uc.Save(ctx, "  ", "content")

		assert.ErrorIs(t, err, notesDomain.ErrTitleRequired)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Error_TitleWithSpace", func(t *testing.T) {
		uc := NewNoteUseCase(&mocks.MockNoteRepository{}, service.NewPlaintextCipher())

		_, err := uc.Save(ctx, "two words", "content")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_TitleTooLong", func(t *testing.T) {
		uc := NewNoteUseCase(&mocks.MockNoteRepository{}, service.NewPlaintextCipher())

		_, err := uc.Save(ctx, strings.Repeat("a", 256), "content")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_ContentRequired", func(t *testing.T) {
		uc := NewNoteUseCase(&mocks.MockNoteRepository{}, service.NewPlaintextCipher())

		_, err := uc.Save(ctx, "rules", " \n ")

		assert.ErrorIs(t, err, notesDomain.ErrContentRequired)
	})

	t.Run("Error_Repository", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Upsert", ctx, mock.Anything).Return(errors.New("db down")).Once()

		note, err := uc.Save(ctx, "rules", "content")

		assert.Nil(t, note)
		assert.EqualError(t, err, "db down")
	})
}

func TestNoteUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Decrypts", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Get", ctx, "rules").
			Return(&notesDomain.Note{Title: "rules", Ciphertext: []byte("be nice")}, nil).
			Once()

		note, err := uc.Get(ctx, "rules")

		require.NoError(t, err)
		assert.Equal(t, "be nice", note.Content)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Get", ctx, "missing").Return(nil, notesDomain.ErrNoteNotFound).Once()

		_, err := uc.Get(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_TitleRequired", func(t *testing.T) {
		uc := NewNoteUseCase(&mocks.MockNoteRepository{}, service.NewPlaintextCipher())

		_, err := uc.Get(ctx, "")

		assert.ErrorIs(t, err, notesDomain.ErrTitleRequired)
	})
}

func TestNoteUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Delete", ctx, "rules").Return(nil).Once()

		require.NoError(t, uc.Delete(ctx, "rules"))
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("Delete", ctx, "missing").Return(notesDomain.ErrNoteNotFound).Once()

		assert.ErrorIs(t, uc.Delete(ctx, "missing"), notesDomain.ErrNoteNotFound)
	})
}

func TestNoteUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &mocks.MockNoteRepository{}
		uc := NewNoteUseCase(repo, service.NewPlaintextCipher())

		repo.On("List", ctx, 0, 50).Return([]string{"amex", "rules"}, nil).Once()

		titles, err := uc.List(ctx, 0, 50)

		require.NoError(t, err)
		assert.Equal(t, []string{"amex", "rules"}, titles)
	})

	t.Run("Error_InvalidPage", func(t *testing.T) {
		uc := NewNoteUseCase(&mocks.MockNoteRepository{}, service.NewPlaintextCipher())

		_, err := uc.List(ctx, -1, 10)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = uc.List(ctx, 0, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
