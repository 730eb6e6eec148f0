package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	Name                    string     `json:"name" db:"name"`
	Email                   string     `json:"email" db:"email"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	Role                    Role       `json:"role" db:"role"`
	Phone                   *string    `json:"phone,omitempty" db:"phone"`
	Location                *string    `json:"location,omitempty" db:"location"`
	Specialization          *string    `json:"specialization,omitempty" db:"specialization"`
	University              *string    `json:"university,omitempty" db:"university"`
	ProfileSummary          *string    `json:"profile_summary,omitempty" db:"profile_summary"`
	AvatarPath              *string    `json:"avatar_path,omitempty" db:"avatar_path"`
	CVPath                  *string    `json:"cv_path,omitempty" db:"cv_path"`
	IsActive                bool       `json:"is_active" db:"is_active"`
	IsEmailVerified         bool       `json:"is_email_verified" db:"is_email_verified"`
	EmailVerificationToken  *string    `json:"-" db:"email_verification_token"`
	EmailVerificationSentAt *time.Time `json:"-" db:"email_verification_sent_at"`
	PasswordResetToken      *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt  *time.Time `json:"-" db:"password_reset_expires_at"`
	LastLoginAt             *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (u *User) IsEmployee() bool { return u.Role == RoleEmployee }
func (u *User) IsEmployer() bool { return u.Role == RoleEmployer }
func (u *User) IsAdmin() bool    { return u.Role == RoleAdmin }

type RegisterInput struct {
	Name           string  `json:"name" validate:"required,min=2,max=255"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	Role           Role    `json:"role" validate:"required,oneof=employee employer"`
	Phone          *string `json:"phone,omitempty"`
	Location       *string `json:"location,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	University     *string `json:"university,omitempty"`
	CompanyName    string  `json:"company_name,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Location       *string `json:"location,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	University     *string `json:"university,omitempty"`
	ProfileSummary *string `json:"profile_summary,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ProfileFields is the fixed checklist used for the completion percentage.
// Adding a field here changes what "100%" means for every employee.
func (u *User) ProfileFields() []bool {
	return []bool{
		u.Name != "",
		u.Email != "",
		strPtrFilled(u.Phone),
		strPtrFilled(u.Location),
		strPtrFilled(u.Specialization),
		strPtrFilled(u.University),
		strPtrFilled(u.ProfileSummary),
		strPtrFilled(u.AvatarPath),
		strPtrFilled(u.CVPath),
	}
}

func strPtrFilled(s *string) bool {
	return s != nil && *s != ""
}
