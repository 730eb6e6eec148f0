package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusPending  JobStatus = "pending"
	JobStatusActive   JobStatus = "active"
	JobStatusDeclined JobStatus = "declined"
	JobStatusClosed   JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusPending, JobStatusActive, JobStatusDeclined, JobStatusClosed:
		return true
	}
	return false
}

// IsLive reports whether the listing is visible on the public board.
func (s JobStatus) IsLive() bool {
	return s == JobStatusActive
}

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

// SkillList stores an ordered list of skill names as a JSON array, so
// the persisted shape matches the wire shape.
type SkillList []string

func (s SkillList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *SkillList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("cannot scan %T into SkillList", src)
}

type JobListing struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	CompanyID          uuid.UUID       `json:"company_id" db:"company_id"`
	Title              string          `json:"title" db:"title"`
	Slug               string          `json:"slug" db:"slug"`
	Description        string          `json:"description" db:"description"`
	Requirements       string          `json:"requirements" db:"requirements"`
	Benefits           *string         `json:"benefits,omitempty" db:"benefits"`
	Skills             SkillList       `json:"skills" db:"skills"`
	Category           *string         `json:"category,omitempty" db:"category"`
	Location           string          `json:"location" db:"location"`
	JobType            JobType         `json:"job_type" db:"job_type"`
	ExperienceLevel    ExperienceLevel `json:"experience_level" db:"experience_level"`
	PositionsAvailable int             `json:"positions_available" db:"positions_available"`
	SalaryMin          *int64          `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax          *int64          `json:"salary_max,omitempty" db:"salary_max"`
	SalaryCurrency     string          `json:"salary_currency" db:"salary_currency"`
	Status             JobStatus       `json:"status" db:"status"`
	DeclineReason      *string         `json:"decline_reason,omitempty" db:"decline_reason"`
	ApplicationsCount  int             `json:"applications_count" db:"applications_count"`
	ViewsCount         int             `json:"views_count" db:"views_count"`
	Deadline           *time.Time      `json:"deadline,omitempty" db:"deadline"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty" db:"approved_at"`
	DeclinedAt         *time.Time      `json:"declined_at,omitempty" db:"declined_at"`
	PublishedAt        *time.Time      `json:"published_at,omitempty" db:"published_at"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty" db:"closed_at"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`

	// Joined, not columns of job_listings.
	CompanyName *string `json:"company_name,omitempty" db:"company_name"`
	CompanyLogo *string `json:"company_logo,omitempty" db:"company_logo"`
}

// IsAcceptingApplications is the single gate for new applications:
// the listing must be live and, when a deadline is set, the deadline
// must not have passed.
func (j *JobListing) IsAcceptingApplications(now time.Time) bool {
	if !j.Status.IsLive() {
		return false
	}
	if j.Deadline != nil && now.After(*j.Deadline) {
		return false
	}
	return true
}

type CreateJobInput struct {
	Title              string          `json:"title" validate:"required,min=3,max=200"`
	Description        string          `json:"description" validate:"required,min=10"`
	Requirements       string          `json:"requirements" validate:"required"`
	Benefits           *string         `json:"benefits,omitempty"`
	Skills             []string        `json:"skills,omitempty"`
	Category           *string         `json:"category,omitempty"`
	Location           string          `json:"location" validate:"required"`
	JobType            JobType         `json:"job_type" validate:"required"`
	ExperienceLevel    ExperienceLevel `json:"experience_level,omitempty"`
	PositionsAvailable *int            `json:"positions_available,omitempty"`
	SalaryMin          *int64          `json:"salary_min,omitempty"`
	SalaryMax          *int64          `json:"salary_max,omitempty"`
	SalaryCurrency     string          `json:"salary_currency,omitempty"`
	Deadline           *time.Time      `json:"deadline,omitempty"`
	SaveAsDraft        bool            `json:"save_as_draft,omitempty"`
}

type UpdateJobInput struct {
	Title              *string          `json:"title,omitempty"`
	Description        *string          `json:"description,omitempty"`
	Requirements       *string          `json:"requirements,omitempty"`
	Benefits           *string          `json:"benefits,omitempty"`
	Skills             []string         `json:"skills,omitempty"`
	Category           *string          `json:"category,omitempty"`
	Location           *string          `json:"location,omitempty"`
	JobType            *JobType         `json:"job_type,omitempty"`
	ExperienceLevel    *ExperienceLevel `json:"experience_level,omitempty"`
	PositionsAvailable *int             `json:"positions_available,omitempty"`
	SalaryMin          *int64           `json:"salary_min,omitempty"`
	SalaryMax          *int64           `json:"salary_max,omitempty"`
	SalaryCurrency     *string          `json:"salary_currency,omitempty"`
	Deadline           *time.Time       `json:"deadline,omitempty"`
}

// JobFilter narrows the public board listing. Zero values mean "any".
type JobFilter struct {
	Search          string
	Location        string
	Category        string
	JobType         JobType
	ExperienceLevel ExperienceLevel
	CompanyID       uuid.UUID
	Status          JobStatus
	Page            int
	PerPage         int
}

// FilterOptions is the distinct value set used to populate board filters.
type FilterOptions struct {
	Locations        []string          `json:"locations"`
	Categories       []string          `json:"categories"`
	JobTypes         []JobType         `json:"job_types"`
	ExperienceLevels []ExperienceLevel `json:"experience_levels"`
}

type PublicStats struct {
	ActiveJobs   int64 `json:"active_jobs"`
	Companies    int64 `json:"companies"`
	JobSeekers   int64 `json:"job_seekers"`
	Applications int64 `json:"applications"`
}
