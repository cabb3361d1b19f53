package mocks

import (
	"context"
	"io"

	"filegate/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, name string, r io.Reader) (storage.FileInfo, error) {
	args := m.Called(ctx, name, r)
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockStore) Open(ctx context.Context, name string) (io.ReadCloser, storage.FileInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.FileInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.FileInfo), args.Error(2)
}

func (m *MockStore) List(ctx context.Context) ([]storage.FileInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.FileInfo), args.Error(1)
}
