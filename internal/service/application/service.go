package application

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/notification"
	"jobportal/internal/service/storage"
)

type Service interface {
	Submit(ctx context.Context, userID, jobID uuid.UUID, input domain.SubmitApplicationInput) (*domain.Application, error)
	Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error
	ListOwn(ctx context.Context, userID uuid.UUID, status domain.ApplicationStatus, page, perPage int) (domain.PaginatedResponse[domain.Application], error)
	GetOwn(ctx context.Context, userID, applicationID uuid.UUID) (*domain.Application, error)

	ListForCompany(ctx context.Context, employerID uuid.UUID, filter domain.ApplicationFilter) (domain.PaginatedResponse[domain.Application], error)
	GetForEmployer(ctx context.Context, employerID, applicationID uuid.UUID) (*domain.Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, input domain.UpdateApplicationStatusInput) (*domain.Application, error)
}

type service struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	notifSvc    notification.Service
	storageSvc  storage.Service
}

func NewService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	notifSvc notification.Service,
	storageSvc storage.Service,
) Service {
	return &service{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		notifSvc:    notifSvc,
		storageSvc:  storageSvc,
	}
}

// decodeAnswers hydrates the screening answers from their stored JSON.
func decodeAnswers(app *domain.Application) {
	if app != nil && len(app.AnswersRaw) > 0 {
		_ = json.Unmarshal(app.AnswersRaw, &app.Answers)
	}
}

func (s *service) Submit(ctx context.Context, userID, jobID uuid.UUID, input domain.SubmitApplicationInput) (*domain.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if !job.IsAcceptingApplications(time.Now()) {
		return nil, domain.ErrJobNotAccepting
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	// A tailored resume attached to this application takes precedence;
	// without one the profile CV is required.
	var resumePath *string
	if input.Resume != nil {
		path, err := s.storageSvc.UploadResume(ctx, userID, input.ResumeSize, input.ResumeMime, input.Resume)
		if err != nil {
			return nil, err
		}
		resumePath = &path
	} else if user.CVPath == nil || *user.CVPath == "" {
		return nil, domain.NewValidationError("cv", "upload a CV to your profile or attach a resume before applying")
	}

	var answersRaw []byte
	if len(input.Answers) > 0 {
		answersRaw, _ = json.Marshal(input.Answers)
	}

	cvPath := user.CVPath
	if resumePath != nil {
		cvPath = resumePath
	}

	app := &domain.Application{
		ID:           uuid.New(),
		UserID:       userID,
		JobListingID: job.ID,
		CoverLetter:  input.CoverLetter,
		// Snapshot of the CV at application time; later profile
		// uploads do not rewrite past applications.
		CVPath:     cvPath,
		ResumePath: resumePath,
		Answers:    input.Answers,
		AnswersRaw: answersRaw,
		Status:     domain.ApplicationSubmitted,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if resumePath != nil {
			if rmErr := s.storageSvc.Remove(ctx, *resumePath); rmErr != nil {
				log.Printf("Failed to remove orphaned resume %s: %v", *resumePath, rmErr)
			}
		}
		return nil, err
	}

	if err := s.jobRepo.RecountApplications(ctx, job.ID); err != nil {
		log.Printf("Failed to recount applications for %s: %v", job.Slug, err)
	}

	company, err := s.companyRepo.GetByID(ctx, job.CompanyID)
	if err == nil && company != nil {
		if err := s.notifSvc.Dispatch(ctx, domain.Event{
			Type:      domain.NotificationApplicationReceived,
			Recipient: company.UserID,
			Title:     "New application",
			Message:   user.Name + " applied for " + job.Title + ".",
			Data: map[string]any{
				"application_id": app.ID.String(),
				"job_id":         job.ID.String(),
				"job_title":      job.Title,
				"applicant_name": user.Name,
			},
		}); err != nil {
			log.Printf("Failed to dispatch application notification: %v", err)
		}
	}

	app.JobTitle = &job.Title
	app.JobSlug = &job.Slug
	app.CompanyName = job.CompanyName
	return app, nil
}

func (s *service) Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil || app.UserID != userID {
		return domain.ErrNotFound
	}
	if !app.CanWithdraw() {
		return domain.ErrCannotWithdraw
	}

	if err := s.appRepo.Delete(ctx, applicationID); err != nil {
		return err
	}
	if app.ResumePath != nil {
		if err := s.storageSvc.Remove(ctx, *app.ResumePath); err != nil {
			log.Printf("Failed to remove withdrawn resume %s: %v", *app.ResumePath, err)
		}
	}
	if err := s.jobRepo.RecountApplications(ctx, app.JobListingID); err != nil {
		log.Printf("Failed to recount applications after withdrawal: %v", err)
	}
	return nil
}

func (s *service) ListOwn(ctx context.Context, userID uuid.UUID, status domain.ApplicationStatus, page, perPage int) (domain.PaginatedResponse[domain.Application], error) {
	page, perPage = domain.NormalizePagination(page, perPage)
	apps, total, err := s.appRepo.List(ctx, domain.ApplicationFilter{
		UserID:  userID,
		Status:  status,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return domain.PaginatedResponse[domain.Application]{}, err
	}
	for i := range apps {
		decodeAnswers(&apps[i])
	}
	return domain.NewPaginatedResponse(apps, page, perPage, total), nil
}

func (s *service) GetOwn(ctx context.Context, userID, applicationID uuid.UUID) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.UserID != userID {
		return nil, domain.ErrNotFound
	}
	decodeAnswers(app)
	return app, nil
}

func (s *service) companyOf(ctx context.Context, employerID uuid.UUID) (*domain.Company, error) {
	company, err := s.companyRepo.GetByUserID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (s *service) ListForCompany(ctx context.Context, employerID uuid.UUID, filter domain.ApplicationFilter) (domain.PaginatedResponse[domain.Application], error) {
	company, err := s.companyOf(ctx, employerID)
	if err != nil {
		return domain.PaginatedResponse[domain.Application]{}, err
	}

	// Scoping to the company is not optional, whatever the caller set.
	filter.CompanyID = company.ID
	filter.UserID = uuid.Nil
	filter.Page, filter.PerPage = domain.NormalizePagination(filter.Page, filter.PerPage)

	apps, total, err := s.appRepo.List(ctx, filter)
	if err != nil {
		return domain.PaginatedResponse[domain.Application]{}, err
	}
	for i := range apps {
		decodeAnswers(&apps[i])
	}
	return domain.NewPaginatedResponse(apps, filter.Page, filter.PerPage, total), nil
}

func (s *service) forEmployer(ctx context.Context, employerID, applicationID uuid.UUID) (*domain.Application, *domain.Company, error) {
	company, err := s.companyOf(ctx, employerID)
	if err != nil {
		return nil, nil, err
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if app == nil {
		return nil, nil, domain.ErrNotFound
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobListingID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil || job.CompanyID != company.ID {
		return nil, nil, domain.ErrNotFound
	}
	return app, company, nil
}

// GetForEmployer opens an application on the employer side. The first
// open flips a fresh submission to viewed and stamps viewed_at.
func (s *service) GetForEmployer(ctx context.Context, employerID, applicationID uuid.UUID) (*domain.Application, error) {
	app, _, err := s.forEmployer(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	if app.Status == domain.ApplicationSubmitted {
		flipped, err := s.appRepo.MarkViewed(ctx, app.ID)
		if err != nil {
			return nil, err
		}
		if flipped {
			refreshed, err := s.appRepo.GetByID(ctx, app.ID)
			if err != nil {
				return nil, err
			}
			if refreshed != nil {
				app = refreshed
			}
		}
	}
	decodeAnswers(app)
	return app, nil
}

// UpdateStatus moves an application to any status the employer picks.
// There is deliberately no transition graph here: hiring is messy, and
// an accidental rejection must be reversible. Every move records who
// reviewed and when.
func (s *service) UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, input domain.UpdateApplicationStatusInput) (*domain.Application, error) {
	status := input.Status
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid application status")
	}

	app, _, err := s.forEmployer(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	statusChanged := app.Status != status
	if !statusChanged && input.Notes == nil {
		return app, nil
	}

	if _, err := s.appRepo.UpdateStatus(ctx, app.ID, status, employerID, input.Notes); err != nil {
		return nil, err
	}

	refreshed, err := s.appRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, domain.ErrNotFound
	}
	decodeAnswers(refreshed)
	if !statusChanged {
		return refreshed, nil
	}

	title := ""
	if refreshed.JobTitle != nil {
		title = *refreshed.JobTitle
	}
	if err := s.notifSvc.Dispatch(ctx, domain.Event{
		Type:      domain.NotificationApplicationStatus,
		Recipient: refreshed.UserID,
		Title:     "Application update",
		Message:   "Your application for " + title + " is now " + string(status) + ".",
		Data: map[string]any{
			"application_id": refreshed.ID.String(),
			"job_title":      title,
			"status":         string(status),
		},
	}); err != nil {
		log.Printf("Failed to dispatch status notification: %v", err)
	}

	return refreshed, nil
}
