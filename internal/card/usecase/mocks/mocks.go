// Package mocks provides mock implementations of the card use case
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/binbot/internal/card/domain"
	historyDomain "github.com/allisson/binbot/internal/history/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// ClassifyBrand mocks the ClassifyBrand method.
func (m *MockCardUseCase) ClassifyBrand(ctx context.Context, prefix string) domain.BrandRule {
	args := m.Called(ctx, prefix)
	return args.Get(0).(domain.BrandRule)
}

// GenerateBatch mocks the GenerateBatch method.
func (m *MockCardUseCase) GenerateBatch(ctx context.Context, input *domain.GenerateInput) (*domain.Batch, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

// LookupBin mocks the LookupBin method.
func (m *MockCardUseCase) LookupBin(ctx context.Context, bin string) (*domain.BinMetadata, error) {
	args := m.Called(ctx, bin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BinMetadata), args.Error(1)
}

// MockGenerator is a mock implementation of Generator.
type MockGenerator struct {
	mock.Mock
}

// Classify mocks the Classify method.
func (m *MockGenerator) Classify(prefix string) domain.BrandRule {
	args := m.Called(prefix)
	return args.Get(0).(domain.BrandRule)
}

// GenerateBatch mocks the GenerateBatch method.
func (m *MockGenerator) GenerateBatch(raw string, count int, mode domain.Mode) ([]string, error) {
	args := m.Called(raw, count, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBinResolver is a mock implementation of BinResolver.
type MockBinResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method.
func (m *MockBinResolver) Resolve(ctx context.Context, bin string) domain.LookupResult {
	args := m.Called(ctx, bin)
	return args.Get(0).(domain.LookupResult)
}

// MockHistoryRecorder is a mock implementation of HistoryRecorder.
type MockHistoryRecorder struct {
	mock.Mock
}

// Record mocks the Record method.
func (m *MockHistoryRecorder) Record(ctx context.Context, kind historyDomain.Kind, value string) error {
	args := m.Called(ctx, kind, value)
	return args.Error(0)
}
