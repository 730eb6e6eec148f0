package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jobportal/internal/domain"
)

type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) Create(ctx context.Context, job *domain.JobListing) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

func (m *JobRepository) GetBySlug(ctx context.Context, slug string) (*domain.JobListing, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

func (m *JobRepository) Update(ctx context.Context, job *domain.JobListing) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.JobListing), args.Get(1).(int64), args.Error(2)
}

func (m *JobRepository) Recent(ctx context.Context, limit int) ([]domain.JobListing, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.JobListing), args.Error(1)
}

func (m *JobRepository) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterOptions), args.Error(1)
}

func (m *JobRepository) Submit(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *JobRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *JobRepository) Decline(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	args := m.Called(ctx, id, reason)
	return args.Bool(0), args.Error(1)
}

func (m *JobRepository) Close(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *JobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) RecountApplications(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobRepository) CountByCompany(ctx context.Context, companyID uuid.UUID, status domain.JobStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobRepository) TotalViewsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobRepository) CreatedByMonth(ctx context.Context, since time.Time) (map[string]int64, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
