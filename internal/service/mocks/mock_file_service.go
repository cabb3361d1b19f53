package mocks

import (
	"context"
	"io"

	"filegate/internal/model"
	"filegate/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, originalFilename, baseURL string) (*model.StoredFile, error) {
	args := m.Called(ctx, r, originalFilename, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredFile), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, baseURL string) ([]model.StoredFile, error) {
	args := m.Called(ctx, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoredFile), args.Error(1)
}

func (m *MockFileService) Open(ctx context.Context, filename string) (io.ReadCloser, storage.FileInfo, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.FileInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.FileInfo), args.Error(2)
}
