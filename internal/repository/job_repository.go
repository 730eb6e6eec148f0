package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"jobportal/internal/domain"
)

const uniqueViolation = "23505"

type JobRepository interface {
	Create(ctx context.Context, job *domain.JobListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobListing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.JobListing, error)
	Update(ctx context.Context, job *domain.JobListing) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, int64, error)
	Recent(ctx context.Context, limit int) ([]domain.JobListing, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	Submit(ctx context.Context, id uuid.UUID) (bool, error)
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
	Decline(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	Close(ctx context.Context, id uuid.UUID) (bool, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	RecountApplications(ctx context.Context, id uuid.UUID) error

	CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID, status domain.JobStatus) (int64, error)
	TotalViewsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CreatedByMonth(ctx context.Context, since time.Time) (map[string]int64, error)
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

// listColumns joins company name and logo onto every listing row.
const listColumns = `
	j.*, c.company_name AS company_name, c.logo_path AS company_logo`

func (r *jobRepository) Create(ctx context.Context, job *domain.JobListing) error {
	query := `
		INSERT INTO job_listings (id, company_id, title, slug, description, requirements, benefits,
			skills, category, location, job_type, experience_level, positions_available,
			salary_min, salary_max, salary_currency, status, deadline, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		job.ID, job.CompanyID, job.Title, job.Slug, job.Description,
		job.Requirements, job.Benefits, job.Skills, job.Category, job.Location,
		job.JobType, job.ExperienceLevel, job.PositionsAvailable,
		job.SalaryMin, job.SalaryMax, job.SalaryCurrency,
		job.Status, job.Deadline, job.PublishedAt,
	).Scan(&job.CreatedAt, &job.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobListing, error) {
	var job domain.JobListing
	query := `
		SELECT ` + listColumns + `
		FROM job_listings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`

	err := r.db.GetContext(ctx, &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) GetBySlug(ctx context.Context, slug string) (*domain.JobListing, error) {
	var job domain.JobListing
	query := `
		SELECT ` + listColumns + `
		FROM job_listings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.slug = $1`

	err := r.db.GetContext(ctx, &job, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.JobListing) error {
	query := `
		UPDATE job_listings
		SET title = :title, description = :description, requirements = :requirements,
			benefits = :benefits, skills = :skills, category = :category,
			location = :location, job_type = :job_type,
			experience_level = :experience_level, positions_available = :positions_available,
			salary_min = :salary_min, salary_max = :salary_max, salary_currency = :salary_currency,
			status = :status, decline_reason = :decline_reason, declined_at = :declined_at,
			deadline = :deadline, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, job)
	return err
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_listings WHERE id = $1`, id)
	return err
}

func (r *jobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "j.status = "+arg(filter.Status))
	}
	if filter.CompanyID != uuid.Nil {
		conditions = append(conditions, "j.company_id = "+arg(filter.CompanyID))
	}
	if filter.JobType != "" {
		conditions = append(conditions, "j.job_type = "+arg(filter.JobType))
	}
	if filter.ExperienceLevel != "" {
		conditions = append(conditions, "j.experience_level = "+arg(filter.ExperienceLevel))
	}
	if filter.Location != "" {
		conditions = append(conditions, "j.location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if filter.Category != "" {
		conditions = append(conditions, "j.category = "+arg(filter.Category))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conditions = append(conditions, "(j.title ILIKE "+p+" OR j.description ILIKE "+p+" OR c.company_name ILIKE "+p+")")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}
	from := ` FROM job_listings j JOIN companies c ON c.id = j.company_id` + where

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*)`+from, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := `SELECT ` + listColumns + from +
		` ORDER BY j.published_at DESC NULLS LAST, j.created_at DESC LIMIT ` +
		arg(filter.PerPage) + ` OFFSET ` + arg(offset)

	jobs := []domain.JobListing{}
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) Recent(ctx context.Context, limit int) ([]domain.JobListing, error) {
	jobs := []domain.JobListing{}
	query := `
		SELECT ` + listColumns + `
		FROM job_listings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'active'
		ORDER BY j.published_at DESC
		LIMIT $1`

	err := r.db.SelectContext(ctx, &jobs, query, limit)
	return jobs, err
}

func (r *jobRepository) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	opts := &domain.FilterOptions{}

	if err := r.db.SelectContext(ctx, &opts.Locations,
		`SELECT DISTINCT location FROM job_listings WHERE status = 'active' ORDER BY location`); err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &opts.Categories,
		`SELECT DISTINCT category FROM job_listings WHERE status = 'active' AND category IS NOT NULL ORDER BY category`); err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &opts.JobTypes,
		`SELECT DISTINCT job_type FROM job_listings WHERE status = 'active' ORDER BY job_type`); err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &opts.ExperienceLevels,
		`SELECT DISTINCT experience_level FROM job_listings WHERE status = 'active' ORDER BY experience_level`); err != nil {
		return nil, err
	}
	return opts, nil
}

// transition runs a guarded status update. The WHERE clause carries the
// allowed source statuses, so a stale actor changes zero rows instead
// of clobbering a concurrent decision.
func (r *jobRepository) transition(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *jobRepository) Submit(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE job_listings
		SET status = 'pending', decline_reason = NULL, declined_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status IN ('draft', 'declined')`
	return r.transition(ctx, query, id)
}

func (r *jobRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE job_listings
		SET status = 'active', approved_at = NOW(), published_at = COALESCE(published_at, NOW()),
			decline_reason = NULL, declined_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`
	return r.transition(ctx, query, id)
}

func (r *jobRepository) Decline(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE job_listings
		SET status = 'declined', decline_reason = $2, declined_at = NOW(), approved_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`
	return r.transition(ctx, query, id, reason)
}

// Close carries no status guard: an employer may pull a listing from
// any state, and closing an already closed listing stays closed.
func (r *jobRepository) Close(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE job_listings
		SET status = 'closed', closed_at = COALESCE(closed_at, NOW()), updated_at = NOW()
		WHERE id = $1`
	return r.transition(ctx, query, id)
}

func (r *jobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE job_listings SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

// RecountApplications recomputes the cached counter from the source of
// truth instead of incrementing, so a withdraw-then-reapply race cannot
// drift it.
func (r *jobRepository) RecountApplications(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE job_listings
		SET applications_count = (SELECT COUNT(*) FROM applications WHERE job_listing_id = $1)
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *jobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM job_listings WHERE status = $1`, status)
	return count, err
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM job_listings`)
	return count, err
}

func (r *jobRepository) CountByCompany(ctx context.Context, companyID uuid.UUID, status domain.JobStatus) (int64, error) {
	var count int64
	if status == "" {
		err := r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM job_listings WHERE company_id = $1`, companyID)
		return count, err
	}
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM job_listings WHERE company_id = $1 AND status = $2`, companyID, status)
	return count, err
}

func (r *jobRepository) TotalViewsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(views_count), 0) FROM job_listings WHERE company_id = $1`, companyID)
	return total, err
}

func (r *jobRepository) CreatedByMonth(ctx context.Context, since time.Time) (map[string]int64, error) {
	rows := []struct {
		Month string `db:"month"`
		Count int64  `db:"count"`
	}{}
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM job_listings
		WHERE created_at >= $1
		GROUP BY 1`

	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Month] = row.Count
	}
	return out, nil
}
