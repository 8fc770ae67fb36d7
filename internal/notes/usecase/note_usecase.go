package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/binbot/internal/errors"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
	"github.com/allisson/binbot/internal/notes/service"
	customValidation "github.com/allisson/binbot/internal/validation"
)

const maxTitleLength = 255

type noteUseCase struct {
	repo   NoteRepository
	cipher service.Cipher
	now    func() time.Time
}

// NewNoteUseCase creates a NoteUseCase that seals content with cipher.
func NewNoteUseCase(repo NoteRepository, cipher service.Cipher) NoteUseCase {
	return &noteUseCase{
		repo:   repo,
		cipher: cipher,
		now:    time.Now,
	}
}

func validateTitle(title string) error {
	if title == "" {
		return notesDomain.ErrTitleRequired
	}
	err := validation.Validate(
		title,
		customValidation.SingleWord,
		validation.RuneLength(1, maxTitleLength),
	)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid note title: %v", err)
	}
	return nil
}

func (n *noteUseCase) Save(ctx context.Context, title, content string) (*notesDomain.Note, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, notesDomain.ErrContentRequired
	}

	ciphertext, err := n.cipher.Encrypt(ctx, []byte(content))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt note content")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate note id")
	}

	now := n.now().UTC()
	note := &notesDomain.Note{
		ID:         id,
		Title:      title,
		Content:    content,
		Ciphertext: ciphertext,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := n.repo.Upsert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (n *noteUseCase) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, notesDomain.ErrTitleRequired
	}

	note, err := n.repo.Get(ctx, title)
	if err != nil {
		return nil, err
	}

	plaintext, err := n.cipher.Decrypt(ctx, note.Ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt note content")
	}
	note.Content = string(plaintext)

	return note, nil
}

func (n *noteUseCase) Delete(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return notesDomain.ErrTitleRequired
	}
	return n.repo.Delete(ctx, title)
}

func (n *noteUseCase) List(ctx context.Context, offset, limit int) ([]string, error) {
	if offset < 0 || limit < 1 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid page offset=%d limit=%d", offset, limit)
	}
	return n.repo.List(ctx, offset, limit)
}
