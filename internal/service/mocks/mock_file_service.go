package mocks

import (
	"context"
	"io"

	"leadinspect/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, key, contentType string, size int64) (storage.ObjectInfo, error) {
	args := m.Called(ctx, r, key, contentType, size)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockFileService) Presign(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
