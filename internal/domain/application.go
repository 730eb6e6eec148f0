package domain

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationViewed      ApplicationStatus = "viewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationViewed, ApplicationShortlisted,
		ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// IsTerminal reports whether the employer already made a final decision.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationRejected || s == ApplicationAccepted
}

type Application struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	UserID          uuid.UUID         `json:"user_id" db:"user_id"`
	JobListingID    uuid.UUID         `json:"job_listing_id" db:"job_listing_id"`
	CoverLetter     *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	CVPath          *string           `json:"cv_path,omitempty" db:"cv_path"`
	ResumePath      *string           `json:"resume_path,omitempty" db:"resume_path"`
	Answers         map[string]string `json:"answers,omitempty" db:"-"`
	AnswersRaw      []byte            `json:"-" db:"answers"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ViewedAt        *time.Time        `json:"viewed_at,omitempty" db:"viewed_at"`
	DecidedAt       *time.Time        `json:"decided_at,omitempty" db:"decided_at"`
	ReviewedBy      *uuid.UUID        `json:"reviewed_by,omitempty" db:"reviewed_by"`
	EmployerNotes   *string           `json:"employer_notes,omitempty" db:"employer_notes"`
	StatusChangedAt *time.Time        `json:"status_changed_at,omitempty" db:"status_changed_at"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`

	// Joined for listing views.
	JobTitle      *string `json:"job_title,omitempty" db:"job_title"`
	JobSlug       *string `json:"job_slug,omitempty" db:"job_slug"`
	CompanyName   *string `json:"company_name,omitempty" db:"company_name"`
	ApplicantName *string `json:"applicant_name,omitempty" db:"applicant_name"`
	ApplicantMail *string `json:"applicant_email,omitempty" db:"applicant_email"`
}

// CanWithdraw allows the applicant to pull out only while the employer
// has not started acting on the application.
func (a *Application) CanWithdraw() bool {
	return a.Status == ApplicationSubmitted || a.Status == ApplicationViewed
}

// SubmitApplicationInput carries the JSON (or multipart form) body of an
// apply request. The resume fields are populated by the handler when the
// applicant attaches a tailored resume instead of using the profile CV.
type SubmitApplicationInput struct {
	CoverLetter *string           `json:"cover_letter,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`

	ResumeSize int64     `json:"-"`
	ResumeMime string    `json:"-"`
	Resume     io.Reader `json:"-"`
}

type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status" validate:"required"`
	Notes  *string           `json:"notes,omitempty"`
}

type ApplicationFilter struct {
	JobListingID uuid.UUID
	UserID       uuid.UUID
	CompanyID    uuid.UUID
	Status       ApplicationStatus
	Page         int
	PerPage      int
}

// ApplicationStats groups counts by status for dashboard cards.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Submitted   int64 `json:"submitted"`
	Viewed      int64 `json:"viewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
	Accepted    int64 `json:"accepted"`
}
