package mocks

import (
	"context"

	"fileapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PresignUpload(ctx context.Context, ownerID, fileName, contentType string) (*storage.UploadTicket, error) {
	args := m.Called(ctx, ownerID, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadTicket), args.Error(1)
}

func (m *MockObjectStore) PresignDownload(ctx context.Context, key, fileName string) (*storage.PresignedURL, error) {
	args := m.Called(ctx, key, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.PresignedURL), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
