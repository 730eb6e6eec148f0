package unit_test

import (
	"context"
	"io"
	"testing"
	"time"

	"jobportal/internal/domain"
	"jobportal/internal/service/application"
	"jobportal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationService() (application.Service, *mocks.ApplicationRepository, *mocks.JobRepository, *mocks.CompanyRepository, *mocks.UserRepository, *mocks.NotificationService, *mocks.StorageService) {
	appRepo := new(mocks.ApplicationRepository)
	jobRepo := new(mocks.JobRepository)
	companyRepo := new(mocks.CompanyRepository)
	userRepo := new(mocks.UserRepository)
	notifSvc := new(mocks.NotificationService)
	storageSvc := new(mocks.StorageService)
	svc := application.NewService(appRepo, jobRepo, companyRepo, userRepo, notifSvc, storageSvc)
	return svc, appRepo, jobRepo, companyRepo, userRepo, notifSvc, storageSvc
}

func strPtr(s string) *string { return &s }

type mockReader struct{}

func (mockReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	ownerID := uuid.New()
	acme := "Acme"

	liveJob := func() *domain.JobListing {
		return &domain.JobListing{
			ID:          uuid.New(),
			CompanyID:   companyID,
			Title:       "Backend Engineer",
			Slug:        "backend-engineer-ab12",
			Status:      domain.JobStatusActive,
			CompanyName: &acme,
		}
	}
	applicant := &domain.User{ID: userID, Name: "Sara", CVPath: strPtr("cvs/" + userID.String() + "/cv.pdf")}

	t.Run("Success - CV is snapshotted and the employer notified", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, userRepo, notifSvc, _ := newApplicationService()
		job := liveJob()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		userRepo.On("GetByID", ctx, userID).Return(applicant, nil).Once()
		appRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.UserID == userID &&
				a.JobListingID == job.ID &&
				a.Status == domain.ApplicationSubmitted &&
				a.CVPath != nil && *a.CVPath == *applicant.CVPath &&
				a.ResumePath == nil
		})).Return(nil).Once()
		jobRepo.On("RecountApplications", ctx, job.ID).Return(nil).Once()
		companyRepo.On("GetByID", ctx, companyID).Return(&domain.Company{ID: companyID, UserID: ownerID}, nil).Once()
		notifSvc.On("Dispatch", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.NotificationApplicationReceived && e.Recipient == ownerID
		})).Return(nil).Once()

		app, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{CoverLetter: strPtr("Hi")})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationSubmitted, app.Status)
		assert.Equal(t, "Backend Engineer", *app.JobTitle)
		appRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("Tailored resume replaces the profile CV", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, userRepo, notifSvc, storageSvc := newApplicationService()
		job := liveJob()
		// No CV on the profile: the attached resume carries the application.
		bare := &domain.User{ID: userID, Name: "Sara"}
		resumePath := "resumes/" + userID.String() + "/1.pdf"

		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		userRepo.On("GetByID", ctx, userID).Return(bare, nil).Once()
		storageSvc.On("UploadResume", ctx, userID, int64(1024), "application/pdf", mock.Anything).Return(resumePath, nil).Once()
		appRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.ResumePath != nil && *a.ResumePath == resumePath &&
				a.CVPath != nil && *a.CVPath == resumePath &&
				a.Answers["notice_period"] == "1 month"
		})).Return(nil).Once()
		jobRepo.On("RecountApplications", ctx, job.ID).Return(nil).Once()
		companyRepo.On("GetByID", ctx, companyID).Return(&domain.Company{ID: companyID, UserID: ownerID}, nil).Once()
		notifSvc.On("Dispatch", ctx, mock.Anything).Return(nil).Once()

		app, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{
			Answers:    map[string]string{"notice_period": "1 month"},
			Resume:     &mockReader{},
			ResumeSize: 1024,
			ResumeMime: "application/pdf",
		})

		assert.NoError(t, err)
		assert.Equal(t, resumePath, *app.ResumePath)
		storageSvc.AssertExpectations(t)
	})

	t.Run("Duplicate application removes the uploaded resume again", func(t *testing.T) {
		svc, appRepo, jobRepo, _, userRepo, _, storageSvc := newApplicationService()
		job := liveJob()
		resumePath := "resumes/" + userID.String() + "/2.pdf"

		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		userRepo.On("GetByID", ctx, userID).Return(applicant, nil).Once()
		storageSvc.On("UploadResume", ctx, userID, int64(2048), "application/pdf", mock.Anything).Return(resumePath, nil).Once()
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyApplied).Once()
		storageSvc.On("Remove", ctx, resumePath).Return(nil).Once()

		_, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{
			Resume:     &mockReader{},
			ResumeSize: 2048,
			ResumeMime: "application/pdf",
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
		jobRepo.AssertNotCalled(t, "RecountApplications", mock.Anything, mock.Anything)
		storageSvc.AssertExpectations(t)
	})

	t.Run("Duplicate application", func(t *testing.T) {
		svc, appRepo, jobRepo, _, userRepo, _, _ := newApplicationService()
		job := liveJob()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		userRepo.On("GetByID", ctx, userID).Return(applicant, nil).Once()
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyApplied).Once()

		_, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{})

		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
		jobRepo.AssertNotCalled(t, "RecountApplications", mock.Anything, mock.Anything)
	})

	t.Run("No CV and no resume", func(t *testing.T) {
		svc, appRepo, jobRepo, _, userRepo, _, _ := newApplicationService()
		job := liveJob()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Name: "Sara"}, nil).Once()

		_, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "cv", verr.Field)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Closed listing rejects applications", func(t *testing.T) {
		svc, _, jobRepo, _, userRepo, _, _ := newApplicationService()
		job := liveJob()
		job.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()

		_, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{})

		assert.ErrorIs(t, err, domain.ErrJobNotAccepting)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Past deadline rejects applications even while active", func(t *testing.T) {
		svc, _, jobRepo, _, _, _, _ := newApplicationService()
		job := liveJob()
		yesterday := time.Now().Add(-24 * time.Hour)
		job.Deadline = &yesterday
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()

		_, err := svc.Submit(ctx, userID, job.ID, domain.SubmitApplicationInput{})

		assert.ErrorIs(t, err, domain.ErrJobNotAccepting)
	})

	t.Run("Unknown listing", func(t *testing.T) {
		svc, _, jobRepo, _, _, _, _ := newApplicationService()
		missing := uuid.New()
		jobRepo.On("GetByID", ctx, missing).Return(nil, nil).Once()

		_, err := svc.Submit(ctx, userID, missing, domain.SubmitApplicationInput{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success while still unreviewed", func(t *testing.T) {
		svc, appRepo, jobRepo, _, _, _, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: userID, JobListingID: uuid.New(), Status: domain.ApplicationViewed}
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()
		appRepo.On("Delete", ctx, app.ID).Return(nil).Once()
		jobRepo.On("RecountApplications", ctx, app.JobListingID).Return(nil).Once()

		err := svc.Withdraw(ctx, userID, app.ID)

		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("Tailored resume is deleted with the application", func(t *testing.T) {
		svc, appRepo, jobRepo, _, _, _, storageSvc := newApplicationService()
		resumePath := "resumes/" + userID.String() + "/3.pdf"
		app := &domain.Application{
			ID:           uuid.New(),
			UserID:       userID,
			JobListingID: uuid.New(),
			Status:       domain.ApplicationSubmitted,
			ResumePath:   &resumePath,
		}
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()
		appRepo.On("Delete", ctx, app.ID).Return(nil).Once()
		storageSvc.On("Remove", ctx, resumePath).Return(nil).Once()
		jobRepo.On("RecountApplications", ctx, app.JobListingID).Return(nil).Once()

		err := svc.Withdraw(ctx, userID, app.ID)

		assert.NoError(t, err)
		storageSvc.AssertExpectations(t)
	})

	t.Run("Shortlisted application cannot be withdrawn", func(t *testing.T) {
		svc, appRepo, _, _, _, _, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: userID, Status: domain.ApplicationShortlisted}
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()

		err := svc.Withdraw(ctx, userID, app.ID)

		assert.ErrorIs(t, err, domain.ErrCannotWithdraw)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Rejected application cannot be withdrawn", func(t *testing.T) {
		svc, appRepo, _, _, _, _, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: userID, Status: domain.ApplicationRejected}
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()

		err := svc.Withdraw(ctx, userID, app.ID)

		assert.ErrorIs(t, err, domain.ErrCannotWithdraw)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Someone else's application reads as not found", func(t *testing.T) {
		svc, appRepo, _, _, _, _, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), Status: domain.ApplicationSubmitted}
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()

		err := svc.Withdraw(ctx, userID, app.ID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationService_GetForEmployer(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New()
	company := &domain.Company{ID: uuid.New(), UserID: employerID}

	t.Run("First open flips submitted to viewed", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, _, _ := newApplicationService()
		job := &domain.JobListing{ID: uuid.New(), CompanyID: company.ID}
		fresh := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: job.ID, Status: domain.ApplicationSubmitted}
		now := time.Now()
		viewed := &domain.Application{ID: fresh.ID, UserID: fresh.UserID, JobListingID: job.ID, Status: domain.ApplicationViewed, ViewedAt: &now}

		companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
		appRepo.On("GetByID", ctx, fresh.ID).Return(fresh, nil).Once()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
		appRepo.On("MarkViewed", ctx, fresh.ID).Return(true, nil).Once()
		appRepo.On("GetByID", ctx, fresh.ID).Return(viewed, nil).Once()

		got, err := svc.GetForEmployer(ctx, employerID, fresh.ID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationViewed, got.Status)
		assert.NotNil(t, got.ViewedAt)
	})

	t.Run("Later opens leave the status alone", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, _, _ := newApplicationService()
		job := &domain.JobListing{ID: uuid.New(), CompanyID: company.ID}
		shortlisted := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: job.ID, Status: domain.ApplicationShortlisted}

		companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
		appRepo.On("GetByID", ctx, shortlisted.ID).Return(shortlisted, nil).Once()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()

		got, err := svc.GetForEmployer(ctx, employerID, shortlisted.ID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationShortlisted, got.Status)
		appRepo.AssertNotCalled(t, "MarkViewed", mock.Anything, mock.Anything)
	})

	t.Run("Stored answers come back decoded", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, _, _ := newApplicationService()
		job := &domain.JobListing{ID: uuid.New(), CompanyID: company.ID}
		app := &domain.Application{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			JobListingID: job.ID,
			Status:       domain.ApplicationViewed,
			AnswersRaw:   []byte(`{"notice_period":"2 weeks"}`),
		}

		companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()

		got, err := svc.GetForEmployer(ctx, employerID, app.ID)

		assert.NoError(t, err)
		assert.Equal(t, "2 weeks", got.Answers["notice_period"])
	})

	t.Run("Application on another company's listing reads as not found", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, _, _ := newApplicationService()
		foreignJob := &domain.JobListing{ID: uuid.New(), CompanyID: uuid.New()}
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: foreignJob.ID, Status: domain.ApplicationSubmitted}

		companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()
		jobRepo.On("GetByID", ctx, foreignJob.ID).Return(foreignJob, nil).Once()

		_, err := svc.GetForEmployer(ctx, employerID, app.ID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New()
	company := &domain.Company{ID: uuid.New(), UserID: employerID}

	setup := func(appRepo *mocks.ApplicationRepository, jobRepo *mocks.JobRepository, companyRepo *mocks.CompanyRepository, app *domain.Application) {
		job := &domain.JobListing{ID: app.JobListingID, CompanyID: company.ID}
		companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(app, nil).Once()
		jobRepo.On("GetByID", ctx, job.ID).Return(job, nil).Once()
	}

	t.Run("Shortlisting records the reviewer and notifies the applicant", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, notifSvc, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: uuid.New(), Status: domain.ApplicationViewed}
		refreshed := &domain.Application{ID: app.ID, UserID: app.UserID, JobListingID: app.JobListingID, Status: domain.ApplicationShortlisted, JobTitle: strPtr("Backend Engineer"), ReviewedBy: &employerID}

		setup(appRepo, jobRepo, companyRepo, app)
		appRepo.On("UpdateStatus", ctx, app.ID, domain.ApplicationShortlisted, employerID, (*string)(nil)).Return(true, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(refreshed, nil).Once()
		notifSvc.On("Dispatch", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.NotificationApplicationStatus &&
				e.Recipient == app.UserID &&
				e.Data["status"] == string(domain.ApplicationShortlisted)
		})).Return(nil).Once()

		got, err := svc.UpdateStatus(ctx, employerID, app.ID, domain.UpdateApplicationStatusInput{Status: domain.ApplicationShortlisted})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationShortlisted, got.Status)
		assert.Equal(t, employerID, *got.ReviewedBy)
		notifSvc.AssertExpectations(t)
		appRepo.AssertExpectations(t)
	})

	t.Run("Reviewer notes land on the application", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, notifSvc, _ := newApplicationService()
		notes := "Strong Go background, schedule a call."
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: uuid.New(), Status: domain.ApplicationViewed}
		refreshed := &domain.Application{ID: app.ID, UserID: app.UserID, JobListingID: app.JobListingID, Status: domain.ApplicationShortlisted, JobTitle: strPtr("Backend Engineer"), EmployerNotes: &notes}

		setup(appRepo, jobRepo, companyRepo, app)
		appRepo.On("UpdateStatus", ctx, app.ID, domain.ApplicationShortlisted, employerID, &notes).Return(true, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(refreshed, nil).Once()
		notifSvc.On("Dispatch", ctx, mock.Anything).Return(nil).Once()

		got, err := svc.UpdateStatus(ctx, employerID, app.ID, domain.UpdateApplicationStatusInput{Status: domain.ApplicationShortlisted, Notes: &notes})

		assert.NoError(t, err)
		assert.Equal(t, notes, *got.EmployerNotes)
	})

	t.Run("A rejection can be reversed", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, notifSvc, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: uuid.New(), Status: domain.ApplicationRejected}
		refreshed := &domain.Application{ID: app.ID, UserID: app.UserID, JobListingID: app.JobListingID, Status: domain.ApplicationShortlisted, JobTitle: strPtr("Backend Engineer")}

		setup(appRepo, jobRepo, companyRepo, app)
		appRepo.On("UpdateStatus", ctx, app.ID, domain.ApplicationShortlisted, employerID, (*string)(nil)).Return(true, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(refreshed, nil).Once()
		notifSvc.On("Dispatch", ctx, mock.Anything).Return(nil).Once()

		got, err := svc.UpdateStatus(ctx, employerID, app.ID, domain.UpdateApplicationStatusInput{Status: domain.ApplicationShortlisted})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationShortlisted, got.Status)
	})

	t.Run("Setting the current status without notes is a no-op", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, notifSvc, _ := newApplicationService()
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: uuid.New(), Status: domain.ApplicationViewed}

		setup(appRepo, jobRepo, companyRepo, app)

		got, err := svc.UpdateStatus(ctx, employerID, app.ID, domain.UpdateApplicationStatusInput{Status: domain.ApplicationViewed})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationViewed, got.Status)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		notifSvc.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("Same status with notes saves them without a notification", func(t *testing.T) {
		svc, appRepo, jobRepo, companyRepo, _, notifSvc, _ := newApplicationService()
		notes := "Pinged the hiring manager."
		app := &domain.Application{ID: uuid.New(), UserID: uuid.New(), JobListingID: uuid.New(), Status: domain.ApplicationViewed}
		refreshed := &domain.Application{ID: app.ID, UserID: app.UserID, JobListingID: app.JobListingID, Status: domain.ApplicationViewed, EmployerNotes: &notes}

		setup(appRepo, jobRepo, companyRepo, app)
		appRepo.On("UpdateStatus", ctx, app.ID, domain.ApplicationViewed, employerID, &notes).Return(true, nil).Once()
		appRepo.On("GetByID", ctx, app.ID).Return(refreshed, nil).Once()

		got, err := svc.UpdateStatus(ctx, employerID, app.ID, domain.UpdateApplicationStatusInput{Status: domain.ApplicationViewed, Notes: &notes})

		assert.NoError(t, err)
		assert.Equal(t, notes, *got.EmployerNotes)
		notifSvc.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("Invalid status value", func(t *testing.T) {
		svc, _, _, companyRepo, _, _, _ := newApplicationService()

		_, err := svc.UpdateStatus(ctx, employerID, uuid.New(), domain.UpdateApplicationStatusInput{Status: domain.ApplicationStatus("hired")})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Field)
		companyRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})
}

func TestApplicationService_ListForCompany(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New()
	company := &domain.Company{ID: uuid.New(), UserID: employerID}

	svc, appRepo, _, companyRepo, _, _, _ := newApplicationService()
	companyRepo.On("GetByUserID", ctx, employerID).Return(company, nil).Once()
	// The caller's company and user scoping is overwritten, always.
	appRepo.On("List", ctx, mock.MatchedBy(func(f domain.ApplicationFilter) bool {
		return f.CompanyID == company.ID && f.UserID == uuid.Nil && f.Page == 1 && f.PerPage == 10
	})).Return([]domain.Application{{Status: domain.ApplicationSubmitted}}, int64(1), nil).Once()

	resp, err := svc.ListForCompany(ctx, employerID, domain.ApplicationFilter{CompanyID: uuid.New(), UserID: uuid.New()})

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	appRepo.AssertExpectations(t)
}
