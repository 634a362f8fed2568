package report

import (
	"github.com/shopspring/decimal"

	"jobsreport/internal/model"
)

// ExportRow is the flat shape handed to the PDF and Excel writers.
// Purchase and selling prices are per-hour figures derived from the
// row's cost and revenue; a zero-hour row divides by one so the totals
// survive intact.
type ExportRow struct {
	Date             string
	ProjectName      string
	ClientName       string
	Description      string
	WorkerName       string
	Hours            float64
	PurchasePrice    decimal.Decimal
	Extra            decimal.Decimal
	ExtraDescription string
	SellingPrice     decimal.Decimal
	Margin           decimal.Decimal
	Paid             string
}

// BuildExportRows converts summary rows into export rows.
func BuildExportRows(summaries []model.ReportSummary) []ExportRow {
	rows := make([]ExportRow, 0, len(summaries))
	for _, s := range summaries {
		divisor := decimal.NewFromInt(1)
		if s.TotalHours != 0 {
			divisor = decimal.NewFromFloat(s.TotalHours)
		}
		rows = append(rows, ExportRow{
			Date:             s.Date,
			ProjectName:      s.ProjectName,
			ClientName:       s.ClientName,
			Description:      s.Description,
			WorkerName:       s.UserName,
			Hours:            s.TotalHours,
			PurchasePrice:    s.Cost.Div(divisor).Round(2),
			Extra:            s.TotalExpenses,
			ExtraDescription: "",
			SellingPrice:     s.Revenue.Div(divisor).Round(2),
			Margin:           s.Margin(),
			Paid:             "No",
		})
	}
	return rows
}
