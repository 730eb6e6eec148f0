package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"jobportal/internal/config"
	"jobportal/internal/domain"
)

const (
	maxImageSize = 2 << 20 // 2 MiB
	maxCVSize    = 5 << 20 // 5 MiB
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var cvTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

type Service interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
	UploadLogo(ctx context.Context, companyID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
	UploadCV(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
	UploadResume(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
	Remove(ctx context.Context, storagePath string) error
	PublicURL(storagePath string) string
	PresignedCVURL(ctx context.Context, storagePath string) (string, error)
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{minioClient: minioClient, cfg: cfg}
}

func (s *service) upload(ctx context.Context, storagePath, mimeType string, fileSize int64, reader io.Reader) error {
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return nil
}

func (s *service) UploadAvatar(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	ext, ok := imageTypes[mimeType]
	if !ok {
		return "", domain.NewValidationError("avatar", "avatar must be a JPEG, PNG, or WebP image")
	}
	if fileSize > maxImageSize {
		return "", domain.NewValidationError("avatar", "avatar must be 2MB or smaller")
	}

	storagePath := fmt.Sprintf("avatars/%s/%d%s", userID, time.Now().UnixNano(), ext)
	if err := s.upload(ctx, storagePath, mimeType, fileSize, reader); err != nil {
		return "", err
	}
	return storagePath, nil
}

func (s *service) UploadLogo(ctx context.Context, companyID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	ext, ok := imageTypes[mimeType]
	if !ok {
		return "", domain.NewValidationError("logo", "logo must be a JPEG, PNG, or WebP image")
	}
	if fileSize > maxImageSize {
		return "", domain.NewValidationError("logo", "logo must be 2MB or smaller")
	}

	storagePath := fmt.Sprintf("logos/%s/%d%s", companyID, time.Now().UnixNano(), ext)
	if err := s.upload(ctx, storagePath, mimeType, fileSize, reader); err != nil {
		return "", err
	}
	return storagePath, nil
}

func (s *service) UploadCV(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	ext, ok := cvTypes[mimeType]
	if !ok {
		return "", domain.NewValidationError("cv", "CV must be a PDF or Word document")
	}
	if fileSize > maxCVSize {
		return "", domain.NewValidationError("cv", "CV must be 5MB or smaller")
	}

	storagePath := fmt.Sprintf("cvs/%s/%d%s", userID, time.Now().UnixNano(), ext)
	if err := s.upload(ctx, storagePath, mimeType, fileSize, reader); err != nil {
		return "", err
	}
	return storagePath, nil
}

// UploadResume stores a per-application resume, separate from the
// profile CV so withdrawing the application can delete it.
func (s *service) UploadResume(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	ext, ok := cvTypes[mimeType]
	if !ok {
		return "", domain.NewValidationError("resume", "resume must be a PDF or Word document")
	}
	if fileSize > maxCVSize {
		return "", domain.NewValidationError("resume", "resume must be 5MB or smaller")
	}

	storagePath := fmt.Sprintf("resumes/%s/%d%s", userID, time.Now().UnixNano(), ext)
	if err := s.upload(ctx, storagePath, mimeType, fileSize, reader); err != nil {
		return "", err
	}
	return storagePath, nil
}

func (s *service) Remove(ctx context.Context, storagePath string) error {
	if storagePath == "" {
		return nil
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func (s *service) PublicURL(storagePath string) string {
	if storagePath == "" {
		return ""
	}
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}

	// Escape each segment, keep the separators.
	parts := strings.Split(storagePath, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, strings.Join(parts, "/"))
}

// PresignedCVURL grants time-limited read access to a CV. The bucket
// policy keeps the cvs/ prefix private.
func (s *service) PresignedCVURL(ctx context.Context, storagePath string) (string, error) {
	if storagePath == "" {
		return "", domain.ErrNotFound
	}
	u, err := s.minioClient.PresignedGetObject(ctx, s.cfg.MinIOBucket, storagePath, 15*time.Minute, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
