package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("hashes password and defaults status to active", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "mario").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, nil)

		user, err := service.CreateUser(context.Background(), CreateUserInput{
			Name:       "Mario Rossi",
			Username:   "mario",
			Password:   "password123",
			Role:       model.RoleAdmin,
			HourlyRate: decimal.NewFromInt(25),
		})

		assert.NoError(t, err)
		assert.Equal(t, model.UserStatusActive, user.Status)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "mario").Return(&model.User{Username: "mario"}, nil)

		service := NewUserService(mockRepo, nil)

		_, err := service.CreateUser(context.Background(), CreateUserInput{
			Name:     "Mario Rossi",
			Username: "mario",
			Password: "password123",
			Role:     model.RoleOperator,
		})

		assert.Equal(t, apperrors.ErrUsernameTaken, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()

	t.Run("absent fields stay untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:         userID,
			Name:       "Luca Bianchi",
			Username:   "luca",
			HourlyRate: decimal.NewFromInt(20),
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, nil)

		rate := decimal.NewFromInt(22)
		updated, err := service.UpdateUser(context.Background(), userID, UserPatch{HourlyRate: &rate})

		assert.NoError(t, err)
		assert.Equal(t, "Luca Bianchi", updated.Name)
		assert.True(t, updated.HourlyRate.Equal(decimal.NewFromInt(22)))
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)

		_, err := service.UpdateUser(context.Background(), userID, UserPatch{})
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockRepo.On("DeleteCascade", mock.Anything, userID).Return(nil)

	service := NewUserService(mockRepo, nil)

	assert.NoError(t, service.DeleteUser(context.Background(), userID))
	mockRepo.AssertExpectations(t)
}
