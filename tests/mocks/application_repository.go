package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jobportal/internal/domain"
)

type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *ApplicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ApplicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}

func (m *ApplicationRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Application, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *ApplicationRepository) RecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Application, error) {
	args := m.Called(ctx, companyID, limit)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *ApplicationRepository) MarkViewed(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedBy uuid.UUID, notes *string) (bool, error) {
	args := m.Called(ctx, id, status, reviewedBy, notes)
	return args.Bool(0), args.Error(1)
}

func (m *ApplicationRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*domain.ApplicationStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}

func (m *ApplicationRepository) StatsByCompany(ctx context.Context, companyID uuid.UUID) (*domain.ApplicationStats, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}

func (m *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ApplicationRepository) CreatedByMonth(ctx context.Context, since time.Time, companyID uuid.UUID) (map[string]int64, error) {
	args := m.Called(ctx, since, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
