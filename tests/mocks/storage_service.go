package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type StorageService struct {
	mock.Mock
}

func (m *StorageService) UploadAvatar(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, userID, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

func (m *StorageService) UploadLogo(ctx context.Context, companyID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, companyID, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

func (m *StorageService) UploadCV(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, userID, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

func (m *StorageService) UploadResume(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, userID, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

func (m *StorageService) Remove(ctx context.Context, storagePath string) error {
	args := m.Called(ctx, storagePath)
	return args.Error(0)
}

func (m *StorageService) PublicURL(storagePath string) string {
	args := m.Called(storagePath)
	return args.String(0)
}

func (m *StorageService) PresignedCVURL(ctx context.Context, storagePath string) (string, error) {
	args := m.Called(ctx, storagePath)
	return args.String(0), args.Error(1)
}
