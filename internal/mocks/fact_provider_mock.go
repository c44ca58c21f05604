// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFactProvider struct {
	mock.Mock
}

func (m *MockFactProvider) Fact(ctx context.Context, n int) string {
	args := m.Called(ctx, n)
	return args.String(0)
}
