package unit_test

import (
	"context"
	"testing"

	"jobportal/internal/domain"
	"jobportal/internal/service/user"
	"jobportal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_SetActive(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("Deactivate another account", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)
		target := &domain.User{ID: uuid.New(), IsActive: false}
		userRepo.On("SetActive", ctx, target.ID, false).Return(nil).Once()
		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		got, err := svc.SetActive(ctx, adminID, target.ID, false)

		assert.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("Admins cannot deactivate themselves", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)

		_, err := svc.SetActive(ctx, adminID, adminID, false)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reactivating yourself is allowed", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)
		self := &domain.User{ID: adminID, IsActive: true}
		userRepo.On("SetActive", ctx, adminID, true).Return(nil).Once()
		userRepo.On("GetByID", ctx, adminID).Return(self, nil).Once()

		got, err := svc.SetActive(ctx, adminID, adminID, true)

		assert.NoError(t, err)
		assert.True(t, got.IsActive)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid role filter", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)

		_, err := svc.List(ctx, domain.Role("superuser"), 1, 10)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "role", verr.Field)
	})

	t.Run("Empty role means all roles", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)
		userRepo.On("List", ctx, domain.Role(""), 1, 10).Return([]domain.User{{Name: "Sara"}}, int64(1), nil).Once()

		resp, err := svc.List(ctx, "", 0, 0)

		assert.NoError(t, err)
		assert.Len(t, resp.Data, 1)
	})
}
