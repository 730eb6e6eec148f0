package unit_test

import (
	"context"
	"testing"
	"time"

	"jobportal/internal/domain"
	"jobportal/internal/service/dashboard"
	"jobportal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDashboardService() (dashboard.Service, *mocks.UserRepository, *mocks.CompanyRepository, *mocks.JobRepository, *mocks.ApplicationRepository, *mocks.NotificationRepository) {
	userRepo := new(mocks.UserRepository)
	companyRepo := new(mocks.CompanyRepository)
	jobRepo := new(mocks.JobRepository)
	appRepo := new(mocks.ApplicationRepository)
	notifRepo := new(mocks.NotificationRepository)
	// Redis nil: the cache layer steps aside and every read hits the
	// repositories.
	svc := dashboard.NewService(userRepo, companyRepo, jobRepo, appRepo, notifRepo, nil)
	return svc, userRepo, companyRepo, jobRepo, appRepo, notifRepo
}

func TestDashboardService_Employee(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, userRepo, _, jobRepo, appRepo, notifRepo := newDashboardService()

	cv := "cvs/cv.pdf"
	user := &domain.User{ID: userID, Name: "Sara", Email: "sara@example.com", CVPath: &cv}
	userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
	appRepo.On("StatsByUser", ctx, userID).Return(&domain.ApplicationStats{Total: 3, Submitted: 1, Viewed: 2}, nil).Once()
	appRepo.On("Recent", ctx, userID, 5).Return([]domain.Application{{Status: domain.ApplicationViewed}}, nil).Once()
	jobRepo.On("Recent", ctx, 6).Return([]domain.JobListing{{Title: "Backend Engineer"}}, nil).Once()
	notifRepo.On("CountUnread", ctx, userID).Return(int64(2), nil).Once()

	dash, err := svc.Employee(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), dash.Applications.Total)
	assert.Equal(t, int64(2), dash.UnreadCount)
	assert.Len(t, dash.RecommendedJobs, 1)
	// 3 of 9 profile fields filled: name, email, cv.
	assert.Equal(t, 33, dash.ProfileCompletion.Percentage)
	assert.Contains(t, dash.ProfileCompletion.Missing, "avatar")
}

func TestDashboardService_Employer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, companyRepo, jobRepo, appRepo, notifRepo := newDashboardService()

	company := &domain.Company{ID: uuid.New(), UserID: userID, CompanyName: "Acme"}
	companyRepo.On("GetByUserID", ctx, userID).Return(company, nil).Once()
	jobRepo.On("CountByCompany", ctx, company.ID, domain.JobStatusActive).Return(int64(2), nil).Once()
	jobRepo.On("CountByCompany", ctx, company.ID, domain.JobStatus("")).Return(int64(7), nil).Once()
	jobRepo.On("CountByCompany", ctx, company.ID, domain.JobStatusPending).Return(int64(1), nil).Once()
	jobRepo.On("TotalViewsByCompany", ctx, company.ID).Return(int64(340), nil).Once()
	appRepo.On("StatsByCompany", ctx, company.ID).Return(&domain.ApplicationStats{Total: 12}, nil).Once()
	appRepo.On("RecentByCompany", ctx, company.ID, 5).Return([]domain.Application{}, nil).Once()

	thisMonth := time.Now().Format("2006-01")
	appRepo.On("CreatedByMonth", ctx, mock.AnythingOfType("time.Time"), company.ID).Return(map[string]int64{thisMonth: 4}, nil).Once()
	notifRepo.On("CountUnread", ctx, userID).Return(int64(0), nil).Once()

	dash, err := svc.Employer(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), dash.ActiveJobs)
	assert.Equal(t, int64(7), dash.TotalJobs)
	assert.Equal(t, int64(340), dash.TotalViews)

	// Six months, zero-filled, the current month carrying the count.
	assert.Len(t, dash.ApplicationTrend, 6)
	last := dash.ApplicationTrend[len(dash.ApplicationTrend)-1]
	assert.Equal(t, thisMonth, last.Month)
	assert.Equal(t, int64(4), last.Count)
	for _, p := range dash.ApplicationTrend[:5] {
		assert.Equal(t, int64(0), p.Count)
	}
}

func TestDashboardService_Employer_NoCompany(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, companyRepo, _, _, _ := newDashboardService()
	companyRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

	_, err := svc.Employer(ctx, userID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardService_Admin(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _, jobRepo, appRepo, _ := newDashboardService()

	userRepo.On("Count", ctx).Return(int64(100), nil).Once()
	userRepo.On("CountByRole", ctx, domain.RoleEmployee).Return(int64(80), nil).Once()
	userRepo.On("CountByRole", ctx, domain.RoleEmployer).Return(int64(19), nil).Once()
	jobRepo.On("Count", ctx).Return(int64(40), nil).Once()
	jobRepo.On("CountByStatus", ctx, domain.JobStatusPending).Return(int64(3), nil).Once()
	jobRepo.On("CountByStatus", ctx, domain.JobStatusActive).Return(int64(25), nil).Once()
	appRepo.On("Count", ctx).Return(int64(500), nil).Once()
	userRepo.On("RegistrationsByMonth", ctx, mock.AnythingOfType("time.Time")).Return(map[string]int64{}, nil).Once()
	jobRepo.On("CreatedByMonth", ctx, mock.AnythingOfType("time.Time")).Return(map[string]int64{}, nil).Once()
	appRepo.On("CreatedByMonth", ctx, mock.AnythingOfType("time.Time"), uuid.Nil).Return(map[string]int64{}, nil).Once()
	jobRepo.On("List", ctx, domain.JobFilter{Page: 1, PerPage: 5}).Return([]domain.JobListing{{Title: "Backend Engineer"}}, int64(40), nil).Once()

	dash, err := svc.Admin(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), dash.TotalUsers)
	assert.Equal(t, int64(3), dash.PendingJobs)
	assert.Len(t, dash.UserTrend, 6)
	assert.Len(t, dash.RecentJobs, 1)
}
