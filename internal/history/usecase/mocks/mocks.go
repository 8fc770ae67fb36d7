// Package mocks provides mock implementations of the history interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// MockHistoryUseCase is a mock implementation of HistoryUseCase.
type MockHistoryUseCase struct {
	mock.Mock
}

// Record mocks the Record method.
func (m *MockHistoryUseCase) Record(ctx context.Context, kind historyDomain.Kind, value string) error {
	args := m.Called(ctx, kind, value)
	return args.Error(0)
}

// DeleteOlderThan mocks the DeleteOlderThan method.
func (m *MockHistoryUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryRepository is a mock implementation of HistoryRepository.
type MockHistoryRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockHistoryRepository) Create(ctx context.Context, entry *historyDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// DeleteOlderThan mocks the DeleteOlderThan method.
func (m *MockHistoryRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
