package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"jobsreport/internal/cache"
	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
	"jobsreport/internal/report"
	"jobsreport/internal/repository"
)

// ExpenseInput is one cost line item on a report payload.
type ExpenseInput struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

// AdditionalWorkerInput is one team member on a report payload; their
// total hours are derived server-side.
type AdditionalWorkerInput struct {
	UserID           uuid.UUID `json:"user_id" validate:"required"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	BreakHours       float64   `json:"break_hours"`
	ManualTotalHours *float64  `json:"manual_total_hours"`
}

// CreateReportInput carries the fields accepted when logging a report.
type CreateReportInput struct {
	UserID            uuid.UUID               `json:"user_id" validate:"required"`
	ProjectID         uuid.UUID               `json:"project_id" validate:"required"`
	Date              string                  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string                  `json:"start_time"`
	EndTime           string                  `json:"end_time"`
	BreakHours        float64                 `json:"break_hours"`
	ManualTotalHours  *float64                `json:"manual_total_hours"`
	Description       string                  `json:"description"`
	Notes             string                  `json:"notes"`
	Expenses          []ExpenseInput          `json:"expenses"`
	AdditionalWorkers []AdditionalWorkerInput `json:"additional_workers"`
}

// ReportPatch is a partial update. Present fields overwrite; the
// expense and additional-worker lists, when present, replace the stored
// lists wholesale. Total hours are rederived after every merge.
type ReportPatch struct {
	UserID            *uuid.UUID               `json:"user_id"`
	ProjectID         *uuid.UUID               `json:"project_id"`
	Date              *string                  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime         *string                  `json:"start_time"`
	EndTime           *string                  `json:"end_time"`
	BreakHours        *float64                 `json:"break_hours"`
	ManualTotalHours  *float64                 `json:"manual_total_hours"`
	Description       *string                  `json:"description"`
	Notes             *string                  `json:"notes"`
	Expenses          *[]ExpenseInput          `json:"expenses"`
	AdditionalWorkers *[]AdditionalWorkerInput `json:"additional_workers"`
}

// ReportService exposes work report operations.
type ReportService interface {
	CreateReport(ctx context.Context, in CreateReportInput) (*model.WorkReport, error)
	GetReport(ctx context.Context, id uuid.UUID) (*model.WorkReport, error)
	// ListReports is role-scoped: admins see everything, other roles
	// only reports they appear on as main or additional worker.
	ListReports(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.WorkReport, error)
	UpdateReport(ctx context.Context, id uuid.UUID, patch ReportPatch) (*model.WorkReport, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	repo        repository.WorkReportRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewReportService builds a ReportService.
func NewReportService(
	repo repository.WorkReportRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) ReportService {
	return &reportService{repo: repo, projectRepo: projectRepo, userRepo: userRepo, cache: cache}
}

func (s *reportService) CreateReport(ctx context.Context, in CreateReportInput) (*model.WorkReport, error) {
	if _, err := s.userRepo.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}
	if _, err := s.projectRepo.FindByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("check project: %w", err)
	}

	r := &model.WorkReport{
		UserID:            in.UserID,
		ProjectID:         in.ProjectID,
		Date:              in.Date,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		BreakHours:        in.BreakHours,
		ManualTotalHours:  in.ManualTotalHours,
		TotalHours:        report.ComputeDuration(in.StartTime, in.EndTime, in.BreakHours, in.ManualTotalHours),
		Description:       in.Description,
		Notes:             in.Notes,
		Expenses:          toExpenses(in.Expenses),
		AdditionalWorkers: toAdditionalWorkers(in.AdditionalWorkers),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.invalidateSummary(ctx)
	return r, nil
}

func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*model.WorkReport, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *reportService) ListReports(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.WorkReport, error) {
	if role == model.RoleAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListForUser(ctx, requesterID)
}

func (s *reportService) UpdateReport(ctx context.Context, id uuid.UUID, patch ReportPatch) (*model.WorkReport, error) {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.UserID != nil {
		r.UserID = *patch.UserID
	}
	if patch.ProjectID != nil {
		r.ProjectID = *patch.ProjectID
	}
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.StartTime != nil {
		r.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		r.EndTime = *patch.EndTime
	}
	if patch.BreakHours != nil {
		r.BreakHours = *patch.BreakHours
	}
	if patch.ManualTotalHours != nil {
		r.ManualTotalHours = patch.ManualTotalHours
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.Expenses != nil {
		r.Expenses = toExpenses(*patch.Expenses)
	}
	if patch.AdditionalWorkers != nil {
		r.AdditionalWorkers = toAdditionalWorkers(*patch.AdditionalWorkers)
	}

	// Durations follow the merged fields, override included.
	r.TotalHours = report.ComputeDuration(r.StartTime, r.EndTime, r.BreakHours, r.ManualTotalHours)
	for i := range r.AdditionalWorkers {
		aw := &r.AdditionalWorkers[i]
		aw.TotalHours = report.ComputeDuration(aw.StartTime, aw.EndTime, aw.BreakHours, aw.ManualTotalHours)
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	s.invalidateSummary(ctx)
	return r, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetReport(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *reportService) invalidateSummary(ctx context.Context) {
	_ = s.cache.Delete(ctx, summaryCacheKey)
}

func toExpenses(in []ExpenseInput) []model.Expense {
	expenses := make([]model.Expense, 0, len(in))
	for _, e := range in {
		expenses = append(expenses, model.Expense{
			Type:   e.Type,
			Amount: e.Amount,
			Notes:  e.Notes,
		})
	}
	return expenses
}

func toAdditionalWorkers(in []AdditionalWorkerInput) []model.AdditionalWorker {
	workers := make([]model.AdditionalWorker, 0, len(in))
	for _, w := range in {
		workers = append(workers, model.AdditionalWorker{
			UserID:           w.UserID,
			StartTime:        w.StartTime,
			EndTime:          w.EndTime,
			BreakHours:       w.BreakHours,
			ManualTotalHours: w.ManualTotalHours,
			TotalHours:       report.ComputeDuration(w.StartTime, w.EndTime, w.BreakHours, w.ManualTotalHours),
		})
	}
	return workers
}
