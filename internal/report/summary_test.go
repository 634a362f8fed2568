package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsreport/internal/model"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func testFixtures() ([]model.WorkReport, []model.Project, []model.Client, []model.User) {
	clientID := uuid.New()
	projectID := uuid.New()
	workerA := uuid.New()
	workerB := uuid.New()

	clients := []model.Client{
		{ID: clientID, Name: "Edilizia Futura S.p.A."},
	}
	projects := []model.Project{
		{ID: projectID, ClientID: clientID, Name: "Condominio Sole", SellingPrice: dec("50")},
	}
	users := []model.User{
		{ID: workerA, Name: "Mario Rossi", HourlyRate: dec("20")},
		{ID: workerB, Name: "Luca Bianchi", HourlyRate: dec("25")},
	}
	reports := []model.WorkReport{
		{
			ID:         uuid.New(),
			UserID:     workerA,
			ProjectID:  projectID,
			Date:       "2026-03-10",
			TotalHours: 8,
			AdditionalWorkers: []model.AdditionalWorker{
				{UserID: workerB, TotalHours: 4},
			},
			CreatedAt: time.Now(),
		},
	}
	return reports, projects, clients, users
}

func TestSummarize_TwoWorkerScenario(t *testing.T) {
	// Two workers collaborate on one report: A (rate 20) 8h as main
	// worker, B (rate 25) 4h additional, project sells at 50/h.
	reports, projects, clients, users := testFixtures()

	summaries := Summarize(reports, projects, clients, users)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Condominio Sole", s.ProjectName)
	assert.Equal(t, "Edilizia Futura S.p.A.", s.ClientName)
	assert.Equal(t, "Mario Rossi", s.UserName)
	assert.Equal(t, 12.0, s.TotalHours)
	assert.True(t, s.Revenue.Equal(dec("600")), "revenue = %s", s.Revenue)
	assert.True(t, s.Cost.Equal(dec("260")), "cost = %s", s.Cost)
	assert.True(t, s.Margin().Equal(dec("340")), "margin = %s", s.Margin())
}

func TestSummarize_MarginIdentity(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	for _, s := range Summarize(reports, projects, clients, users) {
		assert.True(t, s.Margin().Equal(s.Revenue.Sub(s.Cost)))
	}
}

func TestSummarize_OrphanProject(t *testing.T) {
	reports, _, clients, users := testFixtures()

	summaries := Summarize(reports, nil, clients, users)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, UnknownName, s.ProjectName)
	assert.Equal(t, UnknownName, s.ClientName)
	assert.Equal(t, 12.0, s.TotalHours)
	assert.True(t, s.Revenue.IsZero(), "orphan project sells at zero")
}

func TestSummarize_OrphanWorkerContributesHoursNotCost(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	// Drop worker B: their 4h still count toward the team, at zero cost.
	users = users[:1]

	summaries := Summarize(reports, projects, clients, users)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 12.0, s.TotalHours)
	assert.True(t, s.Cost.Equal(dec("160")), "cost = %s", s.Cost)
	assert.True(t, s.Revenue.Equal(dec("600")))
}

func TestSummarize_ExpensesSummed(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	reports[0].Expenses = []model.Expense{
		{Type: "fuel", Amount: dec("35.50")},
		{Type: "materials", Amount: dec("120")},
	}

	summaries := Summarize(reports, projects, clients, users)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].TotalExpenses.Equal(dec("155.50")))
}

func TestSummarize_SortedByDateDescendingStable(t *testing.T) {
	_, projects, clients, users := testFixtures()
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()
	reports := []model.WorkReport{
		{ID: first, ProjectID: projects[0].ID, Date: "2026-03-09"},
		{ID: second, ProjectID: projects[0].ID, Date: "2026-03-11"},
		{ID: third, ProjectID: projects[0].ID, Date: "2026-03-09"},
	}

	summaries := Summarize(reports, projects, clients, users)
	require.Len(t, summaries, 3)
	assert.Equal(t, second, summaries[0].ID)
	// Equal dates keep input order.
	assert.Equal(t, first, summaries[1].ID)
	assert.Equal(t, third, summaries[2].ID)
}

func TestSummarize_Idempotent(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	reports[0].Expenses = []model.Expense{{Type: "fuel", Amount: dec("10")}}

	a := Summarize(reports, projects, clients, users)
	b := Summarize(reports, projects, clients, users)
	assert.Equal(t, a, b)
}

func TestApply_Filters(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	otherUser := uuid.New()
	reports = append(reports, model.WorkReport{
		ID:        uuid.New(),
		UserID:    otherUser,
		ProjectID: uuid.New(), // dangling
		Date:      "2026-03-01",
	})
	summaries := Summarize(reports, projects, clients, users)
	require.Len(t, summaries, 2)

	t.Run("empty filters pass everything", func(t *testing.T) {
		assert.Len(t, Apply(summaries, Filters{}, projects), 2)
	})

	t.Run("date window is inclusive", func(t *testing.T) {
		got := Apply(summaries, Filters{DateFrom: "2026-03-01", DateTo: "2026-03-01"}, projects)
		require.Len(t, got, 1)
		assert.Equal(t, "2026-03-01", got[0].Date)
	})

	t.Run("client filter resolves through project name", func(t *testing.T) {
		got := Apply(summaries, Filters{ClientID: &clients[0].ID}, projects)
		require.Len(t, got, 1)
		assert.Equal(t, "Condominio Sole", got[0].ProjectName)
	})

	t.Run("project filter excludes dangling rows", func(t *testing.T) {
		got := Apply(summaries, Filters{ProjectID: &projects[0].ID}, projects)
		assert.Len(t, got, 1)
	})

	t.Run("user filter matches main worker only", func(t *testing.T) {
		// Current behavior: worker B appears on the first report's team
		// but filtering by B finds nothing, because only the main
		// worker id is matched. Asymmetric with hour aggregation.
		got := Apply(summaries, Filters{UserID: &users[1].ID}, projects)
		assert.Empty(t, got)

		got = Apply(summaries, Filters{UserID: &users[0].ID}, projects)
		assert.Len(t, got, 1)
	})
}

func TestComputeTotals(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	reports[0].Expenses = []model.Expense{{Amount: dec("40")}}

	summaries := Summarize(reports, projects, clients, users)
	totals := ComputeTotals(summaries)

	assert.Equal(t, 12.0, totals.Hours)
	assert.True(t, totals.Cost.Equal(dec("260")))
	assert.True(t, totals.Revenue.Equal(dec("600")))
	assert.True(t, totals.Margin.Equal(dec("340")))
}

func TestBuildExportRows(t *testing.T) {
	reports, projects, clients, users := testFixtures()
	reports[0].Expenses = []model.Expense{{Amount: dec("15")}}

	rows := BuildExportRows(Summarize(reports, projects, clients, users))
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Mario Rossi", r.WorkerName)
	assert.Equal(t, 12.0, r.Hours)
	// cost 260 / 12h, revenue 600 / 12h
	assert.True(t, r.PurchasePrice.Equal(dec("21.67")), "purchase = %s", r.PurchasePrice)
	assert.True(t, r.SellingPrice.Equal(dec("50")), "selling = %s", r.SellingPrice)
	assert.True(t, r.Extra.Equal(dec("15")))
	assert.True(t, r.Margin.Equal(dec("340")))
	assert.Equal(t, "No", r.Paid)
}

func TestBuildExportRows_ZeroHoursDividesByOne(t *testing.T) {
	s := []model.ReportSummary{{
		TotalHours: 0,
		Cost:       dec("30"),
		Revenue:    dec("0"),
	}}
	rows := BuildExportRows(s)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].PurchasePrice.Equal(dec("30")))
}
