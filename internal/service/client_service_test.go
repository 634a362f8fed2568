package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestClientService_CreateClient(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Client")).Return(nil)

	service := NewClientService(mockRepo, nil)

	client, err := service.CreateClient(context.Background(), CreateClientInput{
		Name:      "Impresa Gamma Srl",
		VATNumber: "IT01234567890",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ClientStatusActive, client.Status)
	mockRepo.AssertExpectations(t)
}

func TestClientService_DeleteClient(t *testing.T) {
	clientID := uuid.New()

	t.Run("delegates to the cascading delete", func(t *testing.T) {
		mockRepo := new(MockClientRepository)
		mockRepo.On("FindByID", mock.Anything, clientID).Return(&model.Client{ID: clientID}, nil)
		mockRepo.On("DeleteCascade", mock.Anything, clientID).Return(nil)

		service := NewClientService(mockRepo, nil)

		assert.NoError(t, service.DeleteClient(context.Background(), clientID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing client maps to not found", func(t *testing.T) {
		mockRepo := new(MockClientRepository)
		mockRepo.On("FindByID", mock.Anything, clientID).Return(nil, gorm.ErrRecordNotFound)

		service := NewClientService(mockRepo, nil)

		err := service.DeleteClient(context.Background(), clientID)
		assert.Equal(t, apperrors.ErrClientNotFound, err)
		mockRepo.AssertNotCalled(t, "DeleteCascade")
	})
}
