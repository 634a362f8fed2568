package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobsreport/internal/auth"
	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/service"
)

// ReportHandler bundles work report CRUD endpoints.
type ReportHandler struct {
	svc service.ReportService
}

// NewReportHandler creates a handler layer.
func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// CreateReport godoc
// @Summary Create work report
// @Description Creates a report and derives its total hours from the time window, break and manual override.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body service.CreateReportInput true "Report payload"
// @Success 201 {object} model.WorkReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var in service.CreateReportInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rep, err := h.svc.CreateReport(c.Request().Context(), in)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, rep)
}

// GetReport godoc
// @Summary Get report by id
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} model.WorkReport
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rep, err := h.svc.GetReport(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rep)
}

// ListReports godoc
// @Summary List work reports
// @Description Admins see every report; other roles only see reports they worked on.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.WorkReport
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	info, err := auth.FromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	reports, err := h.svc.ListReports(c.Request().Context(), info.UserID, info.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// UpdateReport godoc
// @Summary Update report fields
// @Description Replaces any provided fields and recomputes every total from the merged values.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param patch body service.ReportPatch true "Fields to update"
// @Success 200 {object} model.WorkReport
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [put]
func (h *ReportHandler) UpdateReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var patch service.ReportPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rep, err := h.svc.UpdateReport(c.Request().Context(), id, patch)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rep)
}

// DeleteReport godoc
// @Summary Delete report with its expenses and extra workers
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteReport(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
