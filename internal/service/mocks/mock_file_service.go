package mocks

import (
	"context"

	"fileapi/internal/model"
	"fileapi/internal/service"
	"fileapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) CreateFile(ctx context.Context, in service.CreateFileInput) (*model.FileWithAuthor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileWithAuthor), args.Error(1)
}

func (m *MockFileService) IssueUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*storage.UploadTicket, error) {
	args := m.Called(ctx, ownerID, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadTicket), args.Error(1)
}

func (m *MockFileService) IssueDownloadURL(ctx context.Context, requesterID, fileID string) (*storage.PresignedURL, error) {
	args := m.Called(ctx, requesterID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.PresignedURL), args.Error(1)
}

func (m *MockFileService) DeleteFile(ctx context.Context, requesterID, fileID string) error {
	args := m.Called(ctx, requesterID, fileID)
	return args.Error(0)
}

func (m *MockFileService) GetFile(ctx context.Context, requesterID, fileID string) (*model.FileWithAuthor, error) {
	args := m.Called(ctx, requesterID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileWithAuthor), args.Error(1)
}

func (m *MockFileService) ListFiles(ctx context.Context, ownerID string, limit, offset int) (*service.FileListResult, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileListResult), args.Error(1)
}
