package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportSummary is the read-side row derived from one work report with
// its project, client and worker references resolved. It exists only in
// responses and exports and is never persisted.
type ReportSummary struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"`
	ProjectName   string          `json:"project_name"`
	ClientName    string          `json:"client_name"`
	UserName      string          `json:"user_name"`
	UserID        uuid.UUID       `json:"user_id"`
	TotalHours    float64         `json:"total_hours"` // team hours, main worker included
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Description   string          `json:"description"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Margin is revenue minus cost, recomputed on demand and never stored.
func (s ReportSummary) Margin() decimal.Decimal {
	return s.Revenue.Sub(s.Cost)
}
