// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFactStore struct {
	mock.Mock
}

func (m *MockFactStore) LoadAll(ctx context.Context) (map[int]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

func (m *MockFactStore) Put(ctx context.Context, number int, fact string) error {
	args := m.Called(ctx, number, fact)
	return args.Error(0)
}

func (m *MockFactStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
