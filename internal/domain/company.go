package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is the 1:1 profile of an employer user. Listings hang off it.
type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	CompanyName string    `json:"company_name" db:"company_name"`
	LogoPath    *string   `json:"logo_path,omitempty" db:"logo_path"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Description *string   `json:"description,omitempty" db:"description"`
	Industry    *string   `json:"industry,omitempty" db:"industry"`
	CompanySize *string   `json:"company_size,omitempty" db:"company_size"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	FoundedYear *int      `json:"founded_year,omitempty" db:"founded_year"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateCompanyInput struct {
	CompanyName *string `json:"company_name,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"company_size,omitempty"`
	Location    *string `json:"location,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
}

func (c *Company) ProfileFields() []bool {
	return []bool{
		c.CompanyName != "",
		strPtrFilled(c.Description),
		strPtrFilled(c.Industry),
		strPtrFilled(c.Website),
		strPtrFilled(c.Location),
		strPtrFilled(c.Phone),
		strPtrFilled(c.CompanySize),
		c.FoundedYear != nil,
		strPtrFilled(c.LogoPath),
	}
}
