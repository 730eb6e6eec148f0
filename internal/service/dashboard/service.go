package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
)

const (
	cacheTTL    = 5 * time.Minute
	trendMonths = 6
)

type Service interface {
	Employee(ctx context.Context, userID uuid.UUID) (*domain.EmployeeDashboard, error)
	Employer(ctx context.Context, userID uuid.UUID) (*domain.EmployerDashboard, error)
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
}

type service struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
	notifRepo   repository.NotificationRepository
	redis       *redis.Client
}

func NewService(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	notifRepo repository.NotificationRepository,
	redis *redis.Client,
) Service {
	return &service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		notifRepo:   notifRepo,
		redis:       redis,
	}
}

func (s *service) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	cached, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

func (s *service) toCache(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}
	if payload, err := json.Marshal(v); err == nil {
		_ = s.redis.Set(ctx, key, payload, cacheTTL).Err()
	}
}

func (s *service) Employee(ctx context.Context, userID uuid.UUID) (*domain.EmployeeDashboard, error) {
	cacheKey := "dashboard:employee:" + userID.String()
	var cached domain.EmployeeDashboard
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	stats, err := s.appRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.appRepo.Recent(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	recommended, err := s.jobRepo.Recent(ctx, 6)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := &domain.EmployeeDashboard{
		ProfileCompletion:  user.Completion(),
		Applications:       *stats,
		RecentApplications: recent,
		RecommendedJobs:    recommended,
		UnreadCount:        unread,
	}
	s.toCache(ctx, cacheKey, dash)
	return dash, nil
}

func (s *service) Employer(ctx context.Context, userID uuid.UUID) (*domain.EmployerDashboard, error) {
	cacheKey := "dashboard:employer:" + userID.String()
	var cached domain.EmployerDashboard
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	company, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	active, err := s.jobRepo.CountByCompany(ctx, company.ID, domain.JobStatusActive)
	if err != nil {
		return nil, err
	}
	pending, err := s.jobRepo.CountByCompany(ctx, company.ID, domain.JobStatusPending)
	if err != nil {
		return nil, err
	}
	total, err := s.jobRepo.CountByCompany(ctx, company.ID, "")
	if err != nil {
		return nil, err
	}
	views, err := s.jobRepo.TotalViewsByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	stats, err := s.appRepo.StatsByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	recent, err := s.appRepo.RecentByCompany(ctx, company.ID, 5)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appCounts, err := s.appRepo.CreatedByMonth(ctx, trendStart(now, trendMonths), company.ID)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := &domain.EmployerDashboard{
		CompanyCompletion:  company.Completion(),
		ActiveJobs:         active,
		PendingJobs:        pending,
		TotalJobs:          total,
		TotalViews:         views,
		Applications:       *stats,
		RecentApplications: recent,
		ApplicationTrend:   buildTrend(now, trendMonths, appCounts),
		UnreadCount:        unread,
	}
	s.toCache(ctx, cacheKey, dash)
	return dash, nil
}

func (s *service) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	cacheKey := "dashboard:admin"
	var cached domain.AdminDashboard
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.userRepo.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	employers, err := s.userRepo.CountByRole(ctx, domain.RoleEmployer)
	if err != nil {
		return nil, err
	}

	totalJobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingJobs, err := s.jobRepo.CountByStatus(ctx, domain.JobStatusPending)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobRepo.CountByStatus(ctx, domain.JobStatusActive)
	if err != nil {
		return nil, err
	}

	totalApps, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := trendStart(now, trendMonths)

	userCounts, err := s.userRepo.RegistrationsByMonth(ctx, since)
	if err != nil {
		return nil, err
	}
	jobCounts, err := s.jobRepo.CreatedByMonth(ctx, since)
	if err != nil {
		return nil, err
	}
	appCounts, err := s.appRepo.CreatedByMonth(ctx, since, uuid.Nil)
	if err != nil {
		return nil, err
	}

	recentJobs, _, err := s.jobRepo.List(ctx, domain.JobFilter{Page: 1, PerPage: 5})
	if err != nil {
		return nil, err
	}

	dash := &domain.AdminDashboard{
		TotalUsers:        totalUsers,
		TotalEmployees:    employees,
		TotalEmployers:    employers,
		TotalJobs:         totalJobs,
		PendingJobs:       pendingJobs,
		ActiveJobs:        activeJobs,
		TotalApplications: totalApps,
		UserTrend:         buildTrend(now, trendMonths, userCounts),
		JobTrend:          buildTrend(now, trendMonths, jobCounts),
		ApplicationTrend:  buildTrend(now, trendMonths, appCounts),
		RecentJobs:        recentJobs,
	}
	s.toCache(ctx, cacheKey, dash)
	return dash, nil
}
