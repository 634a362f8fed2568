package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"jobsreport/internal/model"
)

// Filters narrows a summary list. Absent fields always pass. Date
// bounds compare the YYYY-MM-DD strings lexically.
//
// UserID matches the main worker only, not additional-worker
// participation. That is asymmetric with how team hours are aggregated
// and is preserved as current behavior pending product clarification.
type Filters struct {
	ClientID  *uuid.UUID
	ProjectID *uuid.UUID
	UserID    *uuid.UUID
	DateFrom  string
	DateTo    string
}

// Apply returns the summary rows passing every filter. Client and
// project filters resolve each row's project by matching the resolved
// project name back against the project list, as the summary row itself
// carries no project id.
func Apply(summaries []model.ReportSummary, f Filters, projects []model.Project) []model.ReportSummary {
	projectsByName := make(map[string]*model.Project, len(projects))
	for i := range projects {
		if _, ok := projectsByName[projects[i].Name]; !ok {
			projectsByName[projects[i].Name] = &projects[i]
		}
	}

	filtered := make([]model.ReportSummary, 0, len(summaries))
	for _, s := range summaries {
		if f.DateFrom != "" && s.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && s.Date > f.DateTo {
			continue
		}

		project := projectsByName[s.ProjectName]
		if f.ClientID != nil && (project == nil || project.ClientID != *f.ClientID) {
			continue
		}
		if f.ProjectID != nil && (project == nil || project.ID != *f.ProjectID) {
			continue
		}
		if f.UserID != nil && s.UserID != *f.UserID {
			continue
		}

		filtered = append(filtered, s)
	}
	return filtered
}

// Totals aggregates a filtered summary list for the footer row.
type Totals struct {
	Hours   float64         `json:"hours"`
	Cost    decimal.Decimal `json:"cost"`
	Revenue decimal.Decimal `json:"revenue"`
	Margin  decimal.Decimal `json:"margin"`
}

// ComputeTotals sums hours, cost, revenue and margin over the rows.
// Margin is recomputed per row as revenue minus cost.
func ComputeTotals(summaries []model.ReportSummary) Totals {
	t := Totals{Cost: decimal.Zero, Revenue: decimal.Zero, Margin: decimal.Zero}
	for _, s := range summaries {
		t.Hours += s.TotalHours
		t.Cost = t.Cost.Add(s.Cost)
		t.Revenue = t.Revenue.Add(s.Revenue)
		t.Margin = t.Margin.Add(s.Margin())
	}
	return t
}
