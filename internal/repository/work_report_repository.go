package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobsreport/internal/model"
)

// WorkReportRepository defines persistence operations for work reports.
// Reads always preload the owned expense and additional-worker rows.
type WorkReportRepository interface {
	Create(ctx context.Context, report *model.WorkReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WorkReport, error)
	List(ctx context.Context) ([]model.WorkReport, error)
	// ListForUser returns reports the user appears on, as main worker
	// or as an additional worker.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.WorkReport, error)
	// Update replaces the report row and its owned rows atomically.
	Update(ctx context.Context, report *model.WorkReport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type workReportRepository struct {
	db *gorm.DB
}

// NewWorkReportRepository builds a GORM-backed repository.
func NewWorkReportRepository(db *gorm.DB) WorkReportRepository {
	return &workReportRepository{db: db}
}

func (r *workReportRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Expenses").Preload("AdditionalWorkers")
}

func (r *workReportRepository) Create(ctx context.Context, report *model.WorkReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *workReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WorkReport, error) {
	var report model.WorkReport
	if err := r.preloaded(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *workReportRepository) List(ctx context.Context) ([]model.WorkReport, error) {
	var reports []model.WorkReport
	if err := r.preloaded(ctx).Order("created_at").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *workReportRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.WorkReport, error) {
	participating := r.db.Model(&model.AdditionalWorker{}).
		Select("work_report_id").Where("user_id = ?", userID)

	var reports []model.WorkReport
	if err := r.preloaded(ctx).
		Where("user_id = ? OR id IN (?)", userID, participating).
		Order("created_at").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *workReportRepository) Update(ctx context.Context, report *model.WorkReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Owned rows are replaced wholesale; patches carry the full lists.
		if err := tx.Where("work_report_id = ?", report.ID).Delete(&model.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_report_id = ?", report.ID).Delete(&model.AdditionalWorker{}).Error; err != nil {
			return err
		}
		for i := range report.Expenses {
			report.Expenses[i].ID = uuid.Nil
			report.Expenses[i].WorkReportID = report.ID
		}
		for i := range report.AdditionalWorkers {
			report.AdditionalWorkers[i].ID = uuid.Nil
			report.AdditionalWorkers[i].WorkReportID = report.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(report).Error
	})
}

func (r *workReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WorkReport{}, "id = ?", id).Error
}
