package user

import (
	"context"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
)

// Service is the admin-facing user directory.
type Service interface {
	List(ctx context.Context, role domain.Role, page, perPage int) (domain.PaginatedResponse[domain.User], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetActive(ctx context.Context, actorID, id uuid.UUID, active bool) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) List(ctx context.Context, role domain.Role, page, perPage int) (domain.PaginatedResponse[domain.User], error) {
	if role != "" && !role.IsValid() {
		return domain.PaginatedResponse[domain.User]{}, domain.NewValidationError("role", "invalid role filter")
	}

	page, perPage = domain.NormalizePagination(page, perPage)
	users, total, err := s.userRepo.List(ctx, role, page, perPage)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, page, perPage, total), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *service) SetActive(ctx context.Context, actorID, id uuid.UUID, active bool) (*domain.User, error) {
	// Admins cannot lock themselves out.
	if actorID == id && !active {
		return nil, domain.ErrForbidden
	}

	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
