package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"jobsreport/internal/model"
)

// UnknownName is the display name used when a report points at a
// project, client or user that no longer exists. A dangling reference
// degrades to this sentinel instead of failing the aggregation.
const UnknownName = "Unknown"

// Summarize joins work reports against projects, clients and users and
// produces one summary row per report: team hours, expense total, and
// the revenue/cost pair the margin views are built on.
//
// Missing references never abort the run. An absent project contributes
// a zero selling price, an absent worker contributes hours but no cost.
// The result is sorted by date descending; rows with equal dates keep
// their input order. Inputs are not mutated.
func Summarize(reports []model.WorkReport, projects []model.Project, clients []model.Client, users []model.User) []model.ReportSummary {
	projectsByID := make(map[uuid.UUID]*model.Project, len(projects))
	for i := range projects {
		projectsByID[projects[i].ID] = &projects[i]
	}
	clientsByID := make(map[uuid.UUID]*model.Client, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}
	usersByID := make(map[uuid.UUID]*model.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}

	summaries := make([]model.ReportSummary, 0, len(reports))
	for _, r := range reports {
		project := projectsByID[r.ProjectID]
		var client *model.Client
		if project != nil {
			client = clientsByID[project.ClientID]
		}
		mainWorker := usersByID[r.UserID]

		totalExpenses := decimal.Zero
		for _, e := range r.Expenses {
			totalExpenses = totalExpenses.Add(e.Amount)
		}

		teamHours := r.TotalHours
		for _, aw := range r.AdditionalWorkers {
			teamHours += aw.TotalHours
		}

		sellingPrice := decimal.Zero
		if project != nil {
			sellingPrice = project.SellingPrice
		}
		revenue := sellingPrice.Mul(decimal.NewFromFloat(teamHours))

		cost := decimal.Zero
		if mainWorker != nil {
			cost = mainWorker.HourlyRate.Mul(decimal.NewFromFloat(r.TotalHours)).Add(mainWorker.ExtraCost)
		}
		for _, aw := range r.AdditionalWorkers {
			if w := usersByID[aw.UserID]; w != nil {
				cost = cost.Add(w.HourlyRate.Mul(decimal.NewFromFloat(aw.TotalHours))).Add(w.ExtraCost)
			}
		}

		summaries = append(summaries, model.ReportSummary{
			ID:            r.ID,
			Date:          r.Date,
			ProjectName:   nameOrUnknown(project),
			ClientName:    clientNameOrUnknown(client),
			UserName:      userNameOrUnknown(mainWorker),
			UserID:        r.UserID,
			TotalHours:    teamHours,
			TotalExpenses: totalExpenses,
			Description:   r.Description,
			Revenue:       revenue,
			Cost:          cost,
			CreatedAt:     r.CreatedAt,
		})
	}

	// Stable keeps input order for equal dates; ISO dates compare lexically.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})

	return summaries
}

func nameOrUnknown(p *model.Project) string {
	if p == nil {
		return UnknownName
	}
	return p.Name
}

func clientNameOrUnknown(c *model.Client) string {
	if c == nil {
		return UnknownName
	}
	return c.Name
}

func userNameOrUnknown(u *model.User) string {
	if u == nil {
		return UnknownName
	}
	return u.Name
}
