package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobsreport/internal/model"
	"jobsreport/internal/report"
)

func TestSummaryService_Summary(t *testing.T) {
	clientID := uuid.New()
	projectID := uuid.New()
	userID := uuid.New()

	client := model.Client{ID: clientID, Name: "Impresa Gamma Srl"}
	project := model.Project{
		ID:           projectID,
		ClientID:     clientID,
		Name:         "Cantiere Nord",
		SellingPrice: decimal.NewFromInt(50),
	}
	user := model.User{
		ID:         userID,
		Name:       "Mario Rossi",
		HourlyRate: decimal.NewFromInt(20),
	}
	workReport := model.WorkReport{
		ID:         uuid.New(),
		UserID:     userID,
		ProjectID:  projectID,
		Date:       "2025-03-10",
		TotalHours: 8,
	}

	setup := func() (*MockWorkReportRepository, SummaryService) {
		mockReports := new(MockWorkReportRepository)
		mockProjects := new(MockProjectRepository)
		mockClients := new(MockClientRepository)
		mockUsers := new(MockUserRepository)

		mockReports.On("List", mock.Anything).Return([]model.WorkReport{workReport}, nil)
		mockProjects.On("List", mock.Anything).Return([]model.Project{project}, nil)
		mockClients.On("List", mock.Anything).Return([]model.Client{client}, nil)
		mockUsers.On("List", mock.Anything).Return([]model.User{user}, nil)

		return mockReports, NewSummaryService(mockReports, mockProjects, mockClients, mockUsers, nil)
	}

	t.Run("resolves names and derives money", func(t *testing.T) {
		_, service := setup()

		rows, totals, err := service.Summary(context.Background(), report.Filters{})

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Cantiere Nord", rows[0].ProjectName)
		assert.Equal(t, "Impresa Gamma Srl", rows[0].ClientName)
		assert.Equal(t, "Mario Rossi", rows[0].UserName)
		assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(400)))
		assert.True(t, rows[0].Cost.Equal(decimal.NewFromInt(160)))
		assert.True(t, totals.Margin.Equal(decimal.NewFromInt(240)))
		assert.Equal(t, 8.0, totals.Hours)
	})

	t.Run("filters narrow the totals", func(t *testing.T) {
		_, service := setup()

		otherClient := uuid.New()
		rows, totals, err := service.Summary(context.Background(), report.Filters{ClientID: &otherClient})

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, 0.0, totals.Hours)
		assert.True(t, totals.Revenue.IsZero())
	})

	t.Run("export rows carry per-hour prices", func(t *testing.T) {
		_, service := setup()

		rows, err := service.ExportRows(context.Background(), report.Filters{})

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.True(t, rows[0].SellingPrice.Equal(decimal.NewFromInt(50)))
		assert.True(t, rows[0].PurchasePrice.Equal(decimal.NewFromInt(20)))
		assert.True(t, rows[0].Margin.Equal(decimal.NewFromInt(240)))
		assert.Equal(t, "No", rows[0].Paid)
	})
}
