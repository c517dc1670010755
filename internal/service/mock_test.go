package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"xrate/internal/provider"
	"xrate/internal/repository"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Rate(ctx context.Context, q provider.Query) (float64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(float64), args.Error(1)
}

type MockLookupRepo struct {
	mock.Mock
}

func (m *MockLookupRepo) Record(ctx context.Context, l *repository.Lookup) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLookupRepo) ListRecent(ctx context.Context, limit int) ([]*repository.Lookup, error) {
	args := m.Called(ctx, limit)
	lookups, _ := args.Get(0).([]*repository.Lookup)
	return lookups, args.Error(1)
}
