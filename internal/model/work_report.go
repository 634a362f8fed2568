package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WorkReport is one day of work on a project, logged by its main worker.
//
// Date is stored as YYYY-MM-DD and StartTime/EndTime as HH:MM, matching
// how reports are entered and filtered; range filters compare the date
// strings lexically, which is correct for ISO dates.
type WorkReport struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:char(36);not null;index"`
	Date      string    `json:"date" gorm:"size:10;not null;index"`
	StartTime string    `json:"start_time" gorm:"size:5"`
	EndTime   string    `json:"end_time" gorm:"size:5"`
	BreakHours float64  `json:"break_hours" gorm:"not null;default:0"`
	// ManualTotalHours, when positive, overrides the derived duration.
	ManualTotalHours *float64 `json:"manual_total_hours,omitempty"`
	// TotalHours is derived from start/end/break unless the manual
	// override wins; recomputed on every create and update.
	TotalHours  float64 `json:"total_hours" gorm:"not null;default:0"`
	Description string  `json:"description" gorm:"type:text"`
	Notes       string  `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Owned rows, no independent lifecycle.
	Expenses          []Expense          `json:"expenses" gorm:"foreignKey:WorkReportID;constraint:OnDelete:CASCADE"`
	AdditionalWorkers []AdditionalWorker `json:"additional_workers" gorm:"foreignKey:WorkReportID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (r *WorkReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Expense is a cost line item attached to a work report.
type Expense struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	WorkReportID uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	Type         string          `json:"type" gorm:"size:100"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null;default:0"`
	Notes        string          `json:"notes" gorm:"type:text"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// AdditionalWorker is a team member appended to a report with their own
// time tracking. It references a user but is owned by the report; the
// reference may dangle if that user is later deleted.
type AdditionalWorker struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	WorkReportID     uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	StartTime        string    `json:"start_time" gorm:"size:5"`
	EndTime          string    `json:"end_time" gorm:"size:5"`
	BreakHours       float64   `json:"break_hours" gorm:"not null;default:0"`
	ManualTotalHours *float64  `json:"manual_total_hours,omitempty"`
	TotalHours       float64   `json:"total_hours" gorm:"not null;default:0"`
}

// BeforeCreate sets UUID before creating the record.
func (w *AdditionalWorker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
