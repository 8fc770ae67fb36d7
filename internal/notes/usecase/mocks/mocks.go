// Package mocks provides mock implementations of the notes interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	notesDomain "github.com/allisson/binbot/internal/notes/domain"
)

// MockNoteUseCase is a mock implementation of NoteUseCase.
type MockNoteUseCase struct {
	mock.Mock
}

// Save mocks the Save method.
func (m *MockNoteUseCase) Save(ctx context.Context, title, content string) (*notesDomain.Note, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// Get mocks the Get method.
func (m *MockNoteUseCase) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockNoteUseCase) Delete(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockNoteUseCase) List(ctx context.Context, offset, limit int) ([]string, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

// Upsert mocks the Upsert method.
func (m *MockNoteRepository) Upsert(ctx context.Context, note *notesDomain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockNoteRepository) Get(ctx context.Context, title string) (*notesDomain.Note, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockNoteRepository) Delete(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockNoteRepository) List(ctx context.Context, offset, limit int) ([]string, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
