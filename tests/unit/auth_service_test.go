package unit_test

import (
	"context"
	"testing"
	"time"

	"jobportal/internal/config"
	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/auth"
	"jobportal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (auth.Service, *mocks.UserRepository, *mocks.CompanyRepository, *mocks.SessionRepository, *mocks.EmailService, *mocks.NotificationService) {
	userRepo := new(mocks.UserRepository)
	companyRepo := new(mocks.CompanyRepository)
	sessionRepo := new(mocks.SessionRepository)
	emailSvc := new(mocks.EmailService)
	notifSvc := new(mocks.NotificationService)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	svc := auth.NewService(userRepo, companyRepo, sessionRepo, emailSvc, notifSvc, cfg)
	return svc, userRepo, companyRepo, sessionRepo, emailSvc, notifSvc
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Employee registration", func(t *testing.T) {
		svc, userRepo, companyRepo, sessionRepo, emailSvc, notifSvc := newAuthService()
		userRepo.On("ExistsByEmail", ctx, "sara@example.com").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "sara@example.com" && u.Role == domain.RoleEmployee && u.IsActive && !u.IsEmailVerified
		})).Return(nil).Once()
		userRepo.On("SetEmailVerificationToken", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
		notifSvc.On("Dispatch", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.NotificationWelcome
		})).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()
		// The verification email goes out on a goroutine; the call may
		// or may not land before the test finishes.
		emailSvc.On("SendEmailVerification", mock.Anything, "sara@example.com", "Sara", mock.AnythingOfType("string")).Return(nil).Maybe()

		user, tokens, err := svc.Register(ctx, domain.RegisterInput{
			Name:     "Sara",
			Email:    "sara@example.com",
			Password: "password123",
			Role:     domain.RoleEmployee,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployee, user.Role)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		userRepo.AssertExpectations(t)
	})

	t.Run("Employer registration creates a company shell", func(t *testing.T) {
		svc, userRepo, companyRepo, sessionRepo, emailSvc, notifSvc := newAuthService()
		userRepo.On("ExistsByEmail", ctx, "hr@acme.com").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		companyRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Company) bool {
			return c.CompanyName == "Acme"
		})).Return(nil).Once()
		userRepo.On("SetEmailVerificationToken", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
		notifSvc.On("Dispatch", ctx, mock.Anything).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()
		emailSvc.On("SendEmailVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		user, _, err := svc.Register(ctx, domain.RegisterInput{
			Name:        "HR",
			Email:       "hr@acme.com",
			Password:    "password123",
			Role:        domain.RoleEmployer,
			CompanyName: "Acme",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, user.Role)
		companyRepo.AssertExpectations(t)
	})

	t.Run("Employer without a company name", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()

		_, _, err := svc.Register(ctx, domain.RegisterInput{
			Name:     "HR",
			Email:    "hr@acme.com",
			Password: "password123",
			Role:     domain.RoleEmployer,
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "company_name", verr.Field)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Admin role cannot be self-assigned", func(t *testing.T) {
		svc, _, _, _, _, _ := newAuthService()

		_, _, err := svc.Register(ctx, domain.RegisterInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "password123",
			Role:     domain.RoleAdmin,
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "role", verr.Field)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		userRepo.On("ExistsByEmail", ctx, "sara@example.com").Return(true, nil).Once()

		_, _, err := svc.Register(ctx, domain.RegisterInput{
			Name:     "Sara",
			Email:    "sara@example.com",
			Password: "password123",
			Role:     domain.RoleEmployee,
		})

		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           uuid.New(),
			Name:         "Sara",
			Email:        "sara@example.com",
			PasswordHash: hashPassword(t, password),
			Role:         domain.RoleEmployee,
			IsActive:     true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := activeUser(t)
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		userRepo.On("SetLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		got, tokens, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: password})

		assert.NoError(t, err)
		assert.NotNil(t, got.LastLoginAt)
		assert.NotEmpty(t, tokens.AccessToken)

		// The access token round-trips through validation.
		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleEmployee, claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := activeUser(t)
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "nope"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown email looks like wrong credentials", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: password})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Deactivated account", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		user := activeUser(t)
		user.IsActive = false
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: password})

		assert.ErrorIs(t, err, domain.ErrAccountInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotation revokes the presented token", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := &domain.User{ID: uuid.New(), Email: "sara@example.com", Role: domain.RoleEmployee, IsActive: true}
		session := &repository.Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}

		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		sessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		tokens, err := svc.RefreshToken(ctx, "old-refresh-token")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.NotEqual(t, "old-refresh-token", tokens.RefreshToken)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown token", func(t *testing.T) {
		svc, _, _, sessionRepo, _, _ := newAuthService()
		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()

		_, err := svc.RefreshToken(ctx, "forged")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Deactivation blocks the refresh", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := &domain.User{ID: uuid.New(), IsActive: false}
		session := &repository.Session{ID: uuid.New(), UserID: user.ID}
		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		_, err := svc.RefreshToken(ctx, "refresh-token")

		assert.ErrorIs(t, err, domain.ErrAccountInactive)
		sessionRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success revokes all sessions", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := &domain.User{ID: uuid.New(), PasswordHash: hashPassword(t, "old-password")}
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password")) == nil
		})).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, user.ID).Return(nil).Once()

		err := svc.ChangePassword(ctx, user.ID, domain.ChangePasswordInput{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		user := &domain.User{ID: uuid.New(), PasswordHash: hashPassword(t, "old-password")}
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		err := svc.ChangePassword(ctx, user.ID, domain.ChangePasswordInput{
			CurrentPassword: "guess",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, auth.ErrWrongPassword)
		sessionRepo.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Request for an unknown email stays silent", func(t *testing.T) {
		svc, userRepo, _, _, emailSvc, _ := newAuthService()
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		err := svc.RequestPasswordReset(ctx, "ghost@example.com")

		assert.NoError(t, err)
		emailSvc.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Expired token", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		expired := time.Now().Add(-time.Minute)
		user := &domain.User{ID: uuid.New(), PasswordResetExpiresAt: &expired}
		userRepo.On("GetByResetToken", ctx, "stale").Return(user, nil).Once()

		err := svc.ResetPassword(ctx, "stale", "new-password")

		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("Valid token resets and revokes sessions", func(t *testing.T) {
		svc, userRepo, _, sessionRepo, _, _ := newAuthService()
		expires := time.Now().Add(30 * time.Minute)
		user := &domain.User{ID: uuid.New(), PasswordResetExpiresAt: &expires}
		userRepo.On("GetByResetToken", ctx, "valid").Return(user, nil).Once()
		userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		userRepo.On("ClearPasswordResetToken", ctx, user.ID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, user.ID).Return(nil).Once()

		err := svc.ResetPassword(ctx, "valid", "new-password")

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		sentAt := time.Now().Add(-time.Hour)
		user := &domain.User{ID: uuid.New(), EmailVerificationSentAt: &sentAt}
		userRepo.On("GetByEmailVerificationToken", ctx, "token").Return(user, nil).Once()
		userRepo.On("VerifyEmail", ctx, user.ID).Return(nil).Once()

		assert.NoError(t, svc.VerifyEmail(ctx, "token"))
	})

	t.Run("Token older than a day", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthService()
		sentAt := time.Now().Add(-25 * time.Hour)
		user := &domain.User{ID: uuid.New(), EmailVerificationSentAt: &sentAt}
		userRepo.On("GetByEmailVerificationToken", ctx, "token").Return(user, nil).Once()

		err := svc.VerifyEmail(ctx, "token")

		assert.ErrorIs(t, err, auth.ErrVerificationTokenExpired)
		userRepo.AssertNotCalled(t, "VerifyEmail", mock.Anything, mock.Anything)
	})

	t.Run("Already verified accounts are left alone on resend", func(t *testing.T) {
		svc, userRepo, _, _, emailSvc, _ := newAuthService()
		user := &domain.User{ID: uuid.New(), Email: "sara@example.com", IsEmailVerified: true}
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		err := svc.ResendVerificationEmail(ctx, user.Email)

		assert.NoError(t, err)
		emailSvc.AssertNotCalled(t, "SendEmailVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
