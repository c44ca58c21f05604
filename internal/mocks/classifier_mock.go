// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, n int) (model.Classification, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(model.Classification), args.Error(1)
}

func (m *MockClassifier) Stats() service.CacheStats {
	args := m.Called()
	return args.Get(0).(service.CacheStats)
}
