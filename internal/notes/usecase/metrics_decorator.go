package usecase

import (
	"context"
	"time"

	"github.com/allisson/binbot/internal/metrics"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// noteUseCaseWithMetrics decorates NoteUseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a NoteUseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *noteUseCaseWithMetrics) Save(ctx context.Context, title, content string) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Save(ctx, title, content)
	n.record(ctx, "note_save", start, err)
	return note, err
}

func (n *noteUseCaseWithMetrics) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Get(ctx, title)
	n.record(ctx, "note_get", start, err)
	return note, err
}

func (n *noteUseCaseWithMetrics) Delete(ctx context.Context, title string) error {
	start := time.Now()
	err := n.next.Delete(ctx, title)
	n.record(ctx, "note_delete", start, err)
	return err
}

func (n *noteUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]string, error) {
	start := time.Now()
	titles, err := n.next.List(ctx, offset, limit)
	n.record(ctx, "note_list", start, err)
	return titles, err
}

func (n *noteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	n.metrics.RecordOperation(ctx, "notes", operation, status)
	n.metrics.RecordDuration(ctx, "notes", operation, time.Since(start), status)
}
