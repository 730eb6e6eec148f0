package job

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/config"
	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/notification"
)

// slugAttempts bounds retries when the random suffix still collides.
const slugAttempts = 3

type Service interface {
	Create(ctx context.Context, employerID uuid.UUID, input domain.CreateJobInput) (*domain.JobListing, error)
	Update(ctx context.Context, employerID, jobID uuid.UUID, input domain.UpdateJobInput) (*domain.JobListing, error)
	Delete(ctx context.Context, employerID, jobID uuid.UUID) error
	Submit(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error)
	Close(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error)
	GetOwn(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error)
	ListOwn(ctx context.Context, employerID uuid.UUID, status domain.JobStatus, page, perPage int) (domain.PaginatedResponse[domain.JobListing], error)

	Approve(ctx context.Context, jobID uuid.UUID) (*domain.JobListing, error)
	Decline(ctx context.Context, jobID uuid.UUID, reason string) (*domain.JobListing, error)
	ListAll(ctx context.Context, filter domain.JobFilter) (domain.PaginatedResponse[domain.JobListing], error)

	ListPublic(ctx context.Context, filter domain.JobFilter) (domain.PaginatedResponse[domain.JobListing], error)
	ViewBySlug(ctx context.Context, slug string) (*domain.JobListing, error)
	Recent(ctx context.Context, limit int) ([]domain.JobListing, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	PublicStats(ctx context.Context) (*domain.PublicStats, error)
}

type service struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	appRepo     repository.ApplicationRepository
	notifSvc    notification.Service
	cfg         *config.Config
}

func NewService(
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	notifSvc notification.Service,
	cfg *config.Config,
) Service {
	return &service{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		appRepo:     appRepo,
		notifSvc:    notifSvc,
		cfg:         cfg,
	}
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

// ownJob loads a listing and enforces that it belongs to the employer's
// company. A foreign listing reads as not found, not forbidden, so the
// response does not confirm its existence.
func (s *service) ownJob(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, *domain.Company, error) {
	company, err := s.companyOf(ctx, employerID)
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil || job.CompanyID != company.ID {
		return nil, nil, domain.ErrNotFound
	}
	return job, company, nil
}

func validateJobInput(input domain.CreateJobInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return domain.NewValidationError("description", "description is required")
	}
	if strings.TrimSpace(input.Requirements) == "" {
		return domain.NewValidationError("requirements", "requirements are required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return domain.NewValidationError("location", "location is required")
	}
	if !input.JobType.IsValid() {
		return domain.NewValidationError("job_type", "invalid job type")
	}
	if !input.ExperienceLevel.IsValid() {
		return domain.NewValidationError("experience_level", "invalid experience level")
	}
	if input.PositionsAvailable != nil && *input.PositionsAvailable < 1 {
		return domain.NewValidationError("positions_available", "positions_available must be at least 1")
	}
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return domain.NewValidationError("salary_min", "salary_min cannot exceed salary_max")
	}
	if input.Deadline != nil && !input.Deadline.After(time.Now()) {
		return domain.NewValidationError("deadline", "deadline must be in the future")
	}
	return nil
}

func (s *service) Create(ctx context.Context, employerID uuid.UUID, input domain.CreateJobInput) (*domain.JobListing, error) {
	if input.ExperienceLevel == "" {
		input.ExperienceLevel = domain.ExperienceEntry
	}
	if err := validateJobInput(input); err != nil {
		return nil, err
	}

	company, err := s.companyOf(ctx, employerID)
	if err != nil {
		return nil, err
	}

	status := domain.JobStatusPending
	if input.SaveAsDraft {
		status = domain.JobStatusDraft
	}

	currency := input.SalaryCurrency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	positions := 1
	if input.PositionsAvailable != nil {
		positions = *input.PositionsAvailable
	}

	job := &domain.JobListing{
		ID:                 uuid.New(),
		CompanyID:          company.ID,
		Title:              input.Title,
		Description:        input.Description,
		Requirements:       input.Requirements,
		Benefits:           input.Benefits,
		Skills:             domain.SkillList(input.Skills),
		Category:           input.Category,
		Location:           input.Location,
		JobType:            input.JobType,
		ExperienceLevel:    input.ExperienceLevel,
		PositionsAvailable: positions,
		SalaryMin:          input.SalaryMin,
		SalaryMax:          input.SalaryMax,
		SalaryCurrency:     currency,
		Status:             status,
		Deadline:           input.Deadline,
	}

	// The slug is minted once and survives later title edits, so
	// shared links never break. Collisions get a fresh suffix.
	for attempt := 0; attempt < slugAttempts; attempt++ {
		job.Slug = Slugify(input.Title)
		err = s.jobRepo.Create(ctx, job)
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	job.CompanyName = &company.CompanyName
	job.CompanyLogo = company.LogoPath
	return job, nil
}

func (s *service) Update(ctx context.Context, employerID, jobID uuid.UUID, input domain.UpdateJobInput) (*domain.JobListing, error) {
	job, _, err := s.ownJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domain.NewValidationError("title", "title cannot be empty")
		}
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		if strings.TrimSpace(*input.Requirements) == "" {
			return nil, domain.NewValidationError("requirements", "requirements cannot be empty")
		}
		job.Requirements = *input.Requirements
	}
	if input.Benefits != nil {
		job.Benefits = input.Benefits
	}
	if input.Skills != nil {
		job.Skills = domain.SkillList(input.Skills)
	}
	if input.Category != nil {
		job.Category = input.Category
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		if !input.JobType.IsValid() {
			return nil, domain.NewValidationError("job_type", "invalid job type")
		}
		job.JobType = *input.JobType
	}
	if input.ExperienceLevel != nil {
		if !input.ExperienceLevel.IsValid() {
			return nil, domain.NewValidationError("experience_level", "invalid experience level")
		}
		job.ExperienceLevel = *input.ExperienceLevel
	}
	if input.PositionsAvailable != nil {
		if *input.PositionsAvailable < 1 {
			return nil, domain.NewValidationError("positions_available", "positions_available must be at least 1")
		}
		job.PositionsAvailable = *input.PositionsAvailable
	}
	if input.SalaryMin != nil {
		job.SalaryMin = input.SalaryMin
	}
	if input.SalaryMax != nil {
		job.SalaryMax = input.SalaryMax
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return nil, domain.NewValidationError("salary_min", "salary_min cannot exceed salary_max")
	}
	if input.SalaryCurrency != nil {
		job.SalaryCurrency = *input.SalaryCurrency
	}
	if input.Deadline != nil {
		if !input.Deadline.After(time.Now()) {
			return nil, domain.NewValidationError("deadline", "deadline must be in the future")
		}
		job.Deadline = input.Deadline
	}

	// A declined listing goes back into the review queue once the
	// employer touches it.
	if job.Status == domain.JobStatusDeclined {
		job.Status = domain.JobStatusPending
		job.DeclineReason = nil
		job.DeclinedAt = nil
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *service) Delete(ctx context.Context, employerID, jobID uuid.UUID) error {
	job, _, err := s.ownJob(ctx, employerID, jobID)
	if err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, job.ID)
}

func (s *service) Submit(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error) {
	job, _, err := s.ownJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	ok, err := s.jobRepo.Submit(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.InvalidTransitionError{From: job.Status, To: domain.JobStatusPending, Action: "submit"}
	}
	return s.jobRepo.GetByID(ctx, job.ID)
}

// Close is allowed from any status and closing twice is a no-op, so an
// employer can always pull a listing.
func (s *service) Close(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error) {
	job, _, err := s.ownJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	ok, err := s.jobRepo.Close(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.jobRepo.GetByID(ctx, job.ID)
}

func (s *service) GetOwn(ctx context.Context, employerID, jobID uuid.UUID) (*domain.JobListing, error) {
	job, _, err := s.ownJob(ctx, employerID, jobID)
	return job, err
}

func (s *service) ListOwn(ctx context.Context, employerID uuid.UUID, status domain.JobStatus, page, perPage int) (domain.PaginatedResponse[domain.JobListing], error) {
	company, err := s.companyOf(ctx, employerID)
	if err != nil {
		return domain.PaginatedResponse[domain.JobListing]{}, err
	}

	page, perPage = domain.NormalizePagination(page, perPage)
	jobs, total, err := s.jobRepo.List(ctx, domain.JobFilter{
		CompanyID: company.ID,
		Status:    status,
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		return domain.PaginatedResponse[domain.JobListing]{}, err
	}
	return domain.NewPaginatedResponse(jobs, page, perPage, total), nil
}

// Approve moves a pending listing live. The guarded update decides the
// race: whichever admin lands first wins, the loser gets the listing's
// true current state back in the error.
func (s *service) Approve(ctx context.Context, jobID uuid.UUID) (*domain.JobListing, error) {
	ok, err := s.jobRepo.Approve(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !ok {
		job, err := s.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.InvalidTransitionError{From: job.Status, To: domain.JobStatusActive, Action: "approve"}
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, job, domain.Event{
		Type:    domain.NotificationJobApproved,
		Title:   "Job listing approved",
		Message: "Your listing " + strings.TrimSpace(job.Title) + " is now live.",
		Data: map[string]any{
			"job_id":    job.ID.String(),
			"job_title": job.Title,
			"job_slug":  job.Slug,
		},
	})
	return job, nil
}

func (s *service) Decline(ctx context.Context, jobID uuid.UUID, reason string) (*domain.JobListing, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "a decline reason is required")
	}

	ok, err := s.jobRepo.Decline(ctx, jobID, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		job, err := s.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.InvalidTransitionError{From: job.Status, To: domain.JobStatusDeclined, Action: "decline"}
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, job, domain.Event{
		Type:    domain.NotificationJobDeclined,
		Title:   "Job listing declined",
		Message: "Your listing " + strings.TrimSpace(job.Title) + " was declined: " + reason,
		Data: map[string]any{
			"job_id":    job.ID.String(),
			"job_title": job.Title,
			"reason":    reason,
		},
	})
	return job, nil
}

func (s *service) notifyOwner(ctx context.Context, job *domain.JobListing, event domain.Event) {
	company, err := s.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil || company == nil {
		log.Printf("Failed to resolve listing owner for notification: %v", err)
		return
	}
	event.Recipient = company.UserID
	if err := s.notifSvc.Dispatch(ctx, event); err != nil {
		log.Printf("Failed to dispatch %s notification: %v", event.Type, err)
	}
}

func (s *service) ListAll(ctx context.Context, filter domain.JobFilter) (domain.PaginatedResponse[domain.JobListing], error) {
	filter.Page, filter.PerPage = domain.NormalizePagination(filter.Page, filter.PerPage)
	jobs, total, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return domain.PaginatedResponse[domain.JobListing]{}, err
	}
	return domain.NewPaginatedResponse(jobs, filter.Page, filter.PerPage, total), nil
}

func (s *service) ListPublic(ctx context.Context, filter domain.JobFilter) (domain.PaginatedResponse[domain.JobListing], error) {
	filter.Status = domain.JobStatusActive
	filter.CompanyID = uuid.Nil
	return s.ListAll(ctx, filter)
}

// ViewBySlug serves the public detail page and counts the view. Only
// live listings are visible here; drafts and pending listings behave
// as if they do not exist.
func (s *service) ViewBySlug(ctx context.Context, slug string) (*domain.JobListing, error) {
	job, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if job == nil || !job.Status.IsLive() {
		return nil, domain.ErrNotFound
	}

	if err := s.jobRepo.IncrementViews(ctx, job.ID); err != nil {
		log.Printf("Failed to increment views for %s: %v", job.Slug, err)
	} else {
		job.ViewsCount++
	}
	return job, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]domain.JobListing, error) {
	if limit < 1 || limit > 50 {
		limit = 6
	}
	return s.jobRepo.Recent(ctx, limit)
}

func (s *service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	return s.jobRepo.FilterOptions(ctx)
}

func (s *service) PublicStats(ctx context.Context) (*domain.PublicStats, error) {
	active, err := s.jobRepo.CountByStatus(ctx, domain.JobStatusActive)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.CountWithActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	seekers, err := s.userRepo.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	applications, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PublicStats{
		ActiveJobs:   active,
		Companies:    companies,
		JobSeekers:   seekers,
		Applications: applications,
	}, nil
}
