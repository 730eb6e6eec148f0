package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"jobportal/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Count(ctx context.Context) (int64, error)
	CountWithActiveJobs(ctx context.Context) (int64, error)
}

type companyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, user_id, company_name, website, description, industry, company_size, location, phone, founded_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		company.ID, company.UserID, company.CompanyName, company.Website,
		company.Description, company.Industry, company.CompanySize,
		company.Location, company.Phone, company.FoundedYear,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT * FROM companies WHERE id = $1`

	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT * FROM companies WHERE user_id = $1`

	err := r.db.GetContext(ctx, &company, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET company_name = :company_name, logo_path = :logo_path, website = :website,
			description = :description, industry = :industry, company_size = :company_size,
			location = :location, phone = :phone, founded_year = :founded_year, is_verified = :is_verified,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, company)
	return err
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM companies`)
	return count, err
}

func (r *companyRepository) CountWithActiveJobs(ctx context.Context) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(DISTINCT company_id) FROM job_listings WHERE status = 'active'`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
