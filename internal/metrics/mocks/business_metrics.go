// Package mocks provides a mock BusinessMetrics for decorator tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

// RecordOperation mocks the RecordOperation method.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// RecordCardsGenerated mocks the RecordCardsGenerated method.
func (m *MockBusinessMetrics) RecordCardsGenerated(ctx context.Context, brand, mode string, count int) {
	m.Called(ctx, brand, mode, count)
}

// RecordBinLookup mocks the RecordBinLookup method.
func (m *MockBusinessMetrics) RecordBinLookup(ctx context.Context, source string) {
	m.Called(ctx, source)
}
