package profile

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/storage"
)

// View is a user profile decorated with resolved file URLs and the
// completion report.
type View struct {
	User       *domain.User      `json:"user"`
	AvatarURL  string            `json:"avatar_url,omitempty"`
	CVURL      string            `json:"cv_url,omitempty"`
	Completion domain.Completion `json:"completion"`
}

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*View, error)
	Update(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*View, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error)
	UploadCV(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error)
}

type service struct {
	userRepo   repository.UserRepository
	storageSvc storage.Service
}

func NewService(userRepo repository.UserRepository, storageSvc storage.Service) Service {
	return &service{userRepo: userRepo, storageSvc: storageSvc}
}

func (s *service) view(ctx context.Context, user *domain.User) *View {
	v := &View{
		User:       user,
		Completion: user.Completion(),
	}
	if user.AvatarPath != nil {
		v.AvatarURL = s.storageSvc.PublicURL(*user.AvatarPath)
	}
	if user.CVPath != nil {
		if url, err := s.storageSvc.PresignedCVURL(ctx, *user.CVPath); err == nil {
			v.CVURL = url
		}
	}
	return v
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return s.view(ctx, user), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*View, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.NewValidationError("name", "name cannot be empty")
		}
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Location != nil {
		user.Location = input.Location
	}
	if input.Specialization != nil {
		user.Specialization = input.Specialization
	}
	if input.University != nil {
		user.University = input.University
	}
	if input.ProfileSummary != nil {
		user.ProfileSummary = input.ProfileSummary
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.view(ctx, user), nil
}

func (s *service) UploadAvatar(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	path, err := s.storageSvc.UploadAvatar(ctx, userID, fileSize, mimeType, reader)
	if err != nil {
		return nil, err
	}

	old := user.AvatarPath
	user.AvatarPath = &path
	if err := s.userRepo.Update(ctx, user); err != nil {
		_ = s.storageSvc.Remove(ctx, path)
		return nil, err
	}

	if old != nil {
		if err := s.storageSvc.Remove(ctx, *old); err != nil {
			log.Printf("Failed to remove previous avatar: %v", err)
		}
	}
	return s.view(ctx, user), nil
}

func (s *service) UploadCV(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	path, err := s.storageSvc.UploadCV(ctx, userID, fileSize, mimeType, reader)
	if err != nil {
		return nil, err
	}

	// Old CVs stay in the bucket; submitted applications still point
	// at them.
	user.CVPath = &path
	if err := s.userRepo.Update(ctx, user); err != nil {
		_ = s.storageSvc.Remove(ctx, path)
		return nil, err
	}
	return s.view(ctx, user), nil
}
