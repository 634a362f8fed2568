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

// MockWorkReportRepository is a mock implementation of WorkReportRepository.
type MockWorkReportRepository struct {
	mock.Mock
}

func (m *MockWorkReportRepository) Create(ctx context.Context, report *model.WorkReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockWorkReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WorkReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkReport), args.Error(1)
}

func (m *MockWorkReportRepository) List(ctx context.Context) ([]model.WorkReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkReport), args.Error(1)
}

func (m *MockWorkReportRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.WorkReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkReport), args.Error(1)
}

func (m *MockWorkReportRepository) Update(ctx context.Context, report *model.WorkReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockWorkReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestReportService_CreateReport(t *testing.T) {
	userID := uuid.New()
	helperID := uuid.New()
	projectID := uuid.New()

	t.Run("derives main and team durations", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockProjects.On("FindByID", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.WorkReport")).Return(nil)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		override := 6.5
		created, err := service.CreateReport(context.Background(), CreateReportInput{
			UserID:     userID,
			ProjectID:  projectID,
			Date:       "2025-03-10",
			StartTime:  "08:00",
			EndTime:    "17:00",
			BreakHours: 1,
			AdditionalWorkers: []AdditionalWorkerInput{
				{UserID: helperID, StartTime: "09:00", EndTime: "13:00"},
				{UserID: helperID, ManualTotalHours: &override},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 8.0, created.TotalHours)
		assert.Equal(t, 4.0, created.AdditionalWorkers[0].TotalHours)
		assert.Equal(t, 6.5, created.AdditionalWorkers[1].TotalHours)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown project is rejected", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockProjects.On("FindByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		_, err := service.CreateReport(context.Background(), CreateReportInput{
			UserID:    userID,
			ProjectID: projectID,
			Date:      "2025-03-10",
		})

		assert.Equal(t, apperrors.ErrProjectNotFound, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		_, err := service.CreateReport(context.Background(), CreateReportInput{
			UserID:    userID,
			ProjectID: projectID,
			Date:      "2025-03-10",
		})

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestReportService_UpdateReport(t *testing.T) {
	reportID := uuid.New()

	stored := func() *model.WorkReport {
		return &model.WorkReport{
			ID:         reportID,
			UserID:     uuid.New(),
			ProjectID:  uuid.New(),
			Date:       "2025-03-10",
			StartTime:  "08:00",
			EndTime:    "17:00",
			BreakHours: 1,
			TotalHours: 8,
		}
	}

	t.Run("changed end time rederives total hours", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockRepo.On("FindByID", mock.Anything, reportID).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.WorkReport")).Return(nil)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		endTime := "12:00"
		updated, err := service.UpdateReport(context.Background(), reportID, ReportPatch{EndTime: &endTime})

		assert.NoError(t, err)
		assert.Equal(t, 3.0, updated.TotalHours)
		assert.Equal(t, "08:00", updated.StartTime)
	})

	t.Run("manual override wins over recomputation", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockRepo.On("FindByID", mock.Anything, reportID).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.WorkReport")).Return(nil)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		override := 10.0
		updated, err := service.UpdateReport(context.Background(), reportID, ReportPatch{ManualTotalHours: &override})

		assert.NoError(t, err)
		assert.Equal(t, 10.0, updated.TotalHours)
	})

	t.Run("missing report maps to not found", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockUsers := new(MockUserRepository)

		mockRepo.On("FindByID", mock.Anything, reportID).Return(nil, gorm.ErrRecordNotFound)

		service := NewReportService(mockRepo, mockProjects, mockUsers, nil)

		_, err := service.UpdateReport(context.Background(), reportID, ReportPatch{})
		assert.Equal(t, apperrors.ErrReportNotFound, err)
	})
}

func TestReportService_ListReports(t *testing.T) {
	adminID := uuid.New()
	operatorID := uuid.New()

	t.Run("admin sees every report", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockRepo.On("List", mock.Anything).Return([]model.WorkReport{{}, {}}, nil)

		service := NewReportService(mockRepo, new(MockProjectRepository), new(MockUserRepository), nil)

		reports, err := service.ListReports(context.Background(), adminID, model.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, reports, 2)
		mockRepo.AssertNotCalled(t, "ListForUser")
	})

	t.Run("operator is scoped to own reports", func(t *testing.T) {
		mockRepo := new(MockWorkReportRepository)
		mockRepo.On("ListForUser", mock.Anything, operatorID).Return([]model.WorkReport{{}}, nil)

		service := NewReportService(mockRepo, new(MockProjectRepository), new(MockUserRepository), nil)

		reports, err := service.ListReports(context.Background(), operatorID, model.RoleOperator)
		assert.NoError(t, err)
		assert.Len(t, reports, 1)
		mockRepo.AssertNotCalled(t, "List")
	})
}
