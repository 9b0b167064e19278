package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ChartCache 是 repository.ChartCache 的 Mock
type ChartCache struct {
	mock.Mock
}

func (m *ChartCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *ChartCache) Set(ctx context.Context, key string, v interface{}) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}
