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

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Application, error)
	RecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Application, error)

	MarkViewed(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedBy uuid.UUID, notes *string) (bool, error)

	StatsByUser(ctx context.Context, userID uuid.UUID) (*domain.ApplicationStats, error)
	StatsByCompany(ctx context.Context, companyID uuid.UUID) (*domain.ApplicationStats, error)
	Count(ctx context.Context) (int64, error)
	CreatedByMonth(ctx context.Context, since time.Time, companyID uuid.UUID) (map[string]int64, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `
	a.*, j.title AS job_title, j.slug AS job_slug, c.company_name AS company_name,
	u.name AS applicant_name, u.email AS applicant_email`

const applicationJoins = `
	FROM applications a
	JOIN job_listings j ON j.id = a.job_listing_id
	JOIN companies c ON c.id = j.company_id
	JOIN users u ON u.id = a.user_id`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, user_id, job_listing_id, cover_letter, cv_path, resume_path, answers, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		app.ID, app.UserID, app.JobListingID, app.CoverLetter, app.CVPath,
		app.ResumePath, app.AnswersRaw, app.Status,
	).Scan(&app.CreatedAt, &app.UpdatedAt)

	// The (user_id, job_listing_id) unique index is the authority on
	// duplicate applications, not a read-then-write check.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.ErrAlreadyApplied
	}
	return err
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	query := `SELECT ` + applicationColumns + applicationJoins + ` WHERE a.id = $1`

	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	query := `SELECT * FROM applications WHERE user_id = $1 AND job_listing_id = $2`

	err := r.db.GetContext(ctx, &app, query, userID, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return err
}

func (r *applicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != uuid.Nil {
		conditions = append(conditions, "a.user_id = "+arg(filter.UserID))
	}
	if filter.JobListingID != uuid.Nil {
		conditions = append(conditions, "a.job_listing_id = "+arg(filter.JobListingID))
	}
	if filter.CompanyID != uuid.Nil {
		conditions = append(conditions, "j.company_id = "+arg(filter.CompanyID))
	}
	if filter.Status != "" {
		conditions = append(conditions, "a.status = "+arg(filter.Status))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*)`+applicationJoins+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := `SELECT ` + applicationColumns + applicationJoins + where +
		` ORDER BY a.created_at DESC LIMIT ` + arg(filter.PerPage) + ` OFFSET ` + arg(offset)

	apps := []domain.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Application, error) {
	apps := []domain.Application{}
	query := `SELECT ` + applicationColumns + applicationJoins + `
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &apps, query, userID, limit)
	return apps, err
}

func (r *applicationRepository) RecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Application, error) {
	apps := []domain.Application{}
	query := `SELECT ` + applicationColumns + applicationJoins + `
		WHERE j.company_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &apps, query, companyID, limit)
	return apps, err
}

// MarkViewed is a no-op unless the application is still in its initial
// state; viewed_at records only the first open.
func (r *applicationRepository) MarkViewed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE applications
		SET status = 'viewed', viewed_at = NOW(), status_changed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'submitted'`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdateStatus records the review trail alongside the move: who acted,
// when the status last changed, and the first time the application was
// opened. Notes are only overwritten when the reviewer supplies them.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedBy uuid.UUID, notes *string) (bool, error) {
	query := `
		UPDATE applications
		SET status = $2,
			reviewed_by = $3,
			employer_notes = COALESCE($4, employer_notes),
			status_changed_at = NOW(),
			viewed_at = CASE WHEN $2 = 'viewed' THEN COALESCE(viewed_at, NOW()) ELSE viewed_at END,
			decided_at = CASE WHEN $2 IN ('rejected', 'accepted') THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status, reviewedBy, notes)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *applicationRepository) statsQuery(ctx context.Context, where string, arg interface{}) (*domain.ApplicationStats, error) {
	var stats domain.ApplicationStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE a.status = 'submitted') AS submitted,
			COUNT(*) FILTER (WHERE a.status = 'viewed') AS viewed,
			COUNT(*) FILTER (WHERE a.status = 'shortlisted') AS shortlisted,
			COUNT(*) FILTER (WHERE a.status = 'rejected') AS rejected,
			COUNT(*) FILTER (WHERE a.status = 'accepted') AS accepted
		` + applicationJoins + ` WHERE ` + where

	err := r.db.GetContext(ctx, &stats, query, arg)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *applicationRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*domain.ApplicationStats, error) {
	return r.statsQuery(ctx, "a.user_id = $1", userID)
}

func (r *applicationRepository) StatsByCompany(ctx context.Context, companyID uuid.UUID) (*domain.ApplicationStats, error) {
	return r.statsQuery(ctx, "j.company_id = $1", companyID)
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications`)
	return count, err
}

func (r *applicationRepository) CreatedByMonth(ctx context.Context, since time.Time, companyID uuid.UUID) (map[string]int64, error) {
	rows := []struct {
		Month string `db:"month"`
		Count int64  `db:"count"`
	}{}

	query := `
		SELECT to_char(date_trunc('month', a.created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM applications a`
	args := []interface{}{since}
	if companyID != uuid.Nil {
		query += `
		JOIN job_listings j ON j.id = a.job_listing_id
		WHERE a.created_at >= $1 AND j.company_id = $2`
		args = append(args, companyID)
	} else {
		query += `
		WHERE a.created_at >= $1`
	}
	query += `
		GROUP BY 1`

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Month] = row.Count
	}
	return out, nil
}
