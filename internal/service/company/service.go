package company

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/storage"
)

type View struct {
	Company    *domain.Company   `json:"company"`
	LogoURL    string            `json:"logo_url,omitempty"`
	Completion domain.Completion `json:"completion"`
}

type Service interface {
	GetOwn(ctx context.Context, employerID uuid.UUID) (*View, error)
	Update(ctx context.Context, employerID uuid.UUID, input domain.UpdateCompanyInput) (*View, error)
	UploadLogo(ctx context.Context, employerID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error)
}

type service struct {
	companyRepo repository.CompanyRepository
	storageSvc  storage.Service
}

func NewService(companyRepo repository.CompanyRepository, storageSvc storage.Service) Service {
	return &service{companyRepo: companyRepo, storageSvc: storageSvc}
}

func (s *service) view(company *domain.Company) *View {
	v := &View{
		Company:    company,
		Completion: company.Completion(),
	}
	if company.LogoPath != nil {
		v.LogoURL = s.storageSvc.PublicURL(*company.LogoPath)
	}
	return v
}

func (s *service) own(ctx context.Context, employerID uuid.UUID) (*domain.Company, error) {
	company, err := s.companyRepo.GetByUserID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (s *service) GetOwn(ctx context.Context, employerID uuid.UUID) (*View, error) {
	company, err := s.own(ctx, employerID)
	if err != nil {
		return nil, err
	}
	return s.view(company), nil
}

func (s *service) Update(ctx context.Context, employerID uuid.UUID, input domain.UpdateCompanyInput) (*View, error) {
	company, err := s.own(ctx, employerID)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		if *input.CompanyName == "" {
			return nil, domain.NewValidationError("company_name", "company name cannot be empty")
		}
		company.CompanyName = *input.CompanyName
	}
	if input.Website != nil {
		company.Website = input.Website
	}
	if input.Description != nil {
		company.Description = input.Description
	}
	if input.Industry != nil {
		company.Industry = input.Industry
	}
	if input.CompanySize != nil {
		company.CompanySize = input.CompanySize
	}
	if input.Location != nil {
		company.Location = input.Location
	}
	if input.Phone != nil {
		company.Phone = input.Phone
	}
	if input.FoundedYear != nil {
		company.FoundedYear = input.FoundedYear
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return s.view(company), nil
}

func (s *service) UploadLogo(ctx context.Context, employerID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*View, error) {
	company, err := s.own(ctx, employerID)
	if err != nil {
		return nil, err
	}

	path, err := s.storageSvc.UploadLogo(ctx, company.ID, fileSize, mimeType, reader)
	if err != nil {
		return nil, err
	}

	old := company.LogoPath
	company.LogoPath = &path
	if err := s.companyRepo.Update(ctx, company); err != nil {
		_ = s.storageSvc.Remove(ctx, path)
		return nil, err
	}

	if old != nil {
		if err := s.storageSvc.Remove(ctx, *old); err != nil {
			log.Printf("Failed to remove previous logo: %v", err)
		}
	}
	return s.view(company), nil
}
