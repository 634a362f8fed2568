package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobsreport/internal/cache"
	"jobsreport/internal/model"
	"jobsreport/internal/report"
	"jobsreport/internal/repository"
)

const (
	// summaryCacheKey holds the unfiltered summary rows; every write to
	// users, clients, projects or reports deletes it.
	summaryCacheKey = "summary:rows"
	summaryCacheTTL = 1 * time.Minute
)

// SummaryService builds the read-side summary from the persisted
// collections and applies caller-side filtering and totals.
type SummaryService interface {
	// Summary returns the filtered rows with their totals block.
	Summary(ctx context.Context, filters report.Filters) ([]model.ReportSummary, report.Totals, error)
	// ExportRows returns the filtered rows flattened for the PDF and
	// Excel writers.
	ExportRows(ctx context.Context, filters report.Filters) ([]report.ExportRow, error)
}

type summaryService struct {
	reportRepo  repository.WorkReportRepository
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewSummaryService builds a SummaryService over the four collections.
func NewSummaryService(
	reportRepo repository.WorkReportRepository,
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) SummaryService {
	return &summaryService{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

func (s *summaryService) Summary(ctx context.Context, filters report.Filters) ([]model.ReportSummary, report.Totals, error) {
	summaries, projects, err := s.rows(ctx)
	if err != nil {
		return nil, report.Totals{}, err
	}

	filtered := report.Apply(summaries, filters, projects)
	return filtered, report.ComputeTotals(filtered), nil
}

func (s *summaryService) ExportRows(ctx context.Context, filters report.Filters) ([]report.ExportRow, error) {
	filtered, _, err := s.Summary(ctx, filters)
	if err != nil {
		return nil, err
	}
	return report.BuildExportRows(filtered), nil
}

// rows returns the unfiltered summary list plus the project collection
// the filters resolve against. The summary list is cached; projects are
// always read fresh as they are needed for filter resolution anyway.
func (s *summaryService) rows(ctx context.Context) ([]model.ReportSummary, []model.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list projects: %w", err)
	}

	if data, _ := s.cache.Get(ctx, summaryCacheKey); data != nil {
		var cached []model.ReportSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, projects, nil
		}
	}

	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list reports: %w", err)
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list clients: %w", err)
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list users: %w", err)
	}

	summaries := report.Summarize(reports, projects, clients, users)

	if payload, err := json.Marshal(summaries); err == nil {
		_ = s.cache.Set(ctx, summaryCacheKey, payload, summaryCacheTTL)
	}

	return summaries, projects, nil
}
