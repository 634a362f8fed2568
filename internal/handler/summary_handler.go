package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobsreport/internal/auth"
	"jobsreport/internal/export"
	"jobsreport/internal/model"
	"jobsreport/internal/report"
	"jobsreport/internal/service"
)

// SummaryHandler serves the aggregated work summary and its exports.
type SummaryHandler struct {
	svc service.SummaryService
}

// NewSummaryHandler creates a handler layer.
func NewSummaryHandler(svc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// SummaryResponse is the summary endpoint payload.
type SummaryResponse struct {
	Rows   []model.ReportSummary `json:"rows"`
	Totals report.Totals         `json:"totals"`
}

// parseFilters reads the optional query parameters shared by the
// summary and export endpoints.
func parseFilters(c echo.Context) (report.Filters, error) {
	var f report.Filters
	for param, dst := range map[string]**uuid.UUID{
		"clientId":  &f.ClientID,
		"projectId": &f.ProjectID,
		"userId":    &f.UserID,
	} {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("invalid %s", param)
		}
		*dst = &id
	}
	f.DateFrom = c.QueryParam("dateFrom")
	f.DateTo = c.QueryParam("dateTo")
	return f, nil
}

// GetSummary godoc
// @Summary Aggregated per-report summary with totals
// @Description Returns one row per work report with team hours, cost, revenue and margin, plus totals over the filtered set.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param clientId query string false "Filter by client"
// @Param projectId query string false "Filter by project"
// @Param userId query string false "Filter by main worker"
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, totals, err := h.svc.Summary(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, SummaryResponse{Rows: rows, Totals: totals})
}

// ExportExcel godoc
// @Summary Download the filtered summary as an Excel workbook
// @Tags summary
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param clientId query string false "Filter by client"
// @Param projectId query string false "Filter by project"
// @Param userId query string false "Filter by main worker"
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Router /summary/export/excel [get]
func (h *SummaryHandler) ExportExcel(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := h.svc.ExportRows(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := export.WriteExcel(&buf, rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("JobsReport_Export_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportPDF godoc
// @Summary Download the filtered summary as a PDF
// @Tags summary
// @Produce application/pdf
// @Security BearerAuth
// @Param clientId query string false "Filter by client"
// @Param projectId query string false "Filter by project"
// @Param userId query string false "Filter by main worker"
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Router /summary/export/pdf [get]
func (h *SummaryHandler) ExportPDF(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := auth.FromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	rows, err := h.svc.ExportRows(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, rows, info.Username); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("JobsReport_Dettaglio_%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
