package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/service"
)

// SubcontractorHandler bundles subcontractor CRUD endpoints.
type SubcontractorHandler struct {
	svc service.SubcontractorService
}

// NewSubcontractorHandler creates a handler layer.
func NewSubcontractorHandler(svc service.SubcontractorService) *SubcontractorHandler {
	return &SubcontractorHandler{svc: svc}
}

// CreateSubcontractor godoc
// @Summary Create subcontractor
// @Tags subcontractors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subcontractor body service.CreateSubcontractorInput true "Subcontractor payload"
// @Success 201 {object} model.Subcontractor
// @Failure 400 {object} errors.ErrorResponse
// @Router /subcontractors [post]
func (h *SubcontractorHandler) CreateSubcontractor(c echo.Context) error {
	var in service.CreateSubcontractorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.svc.CreateSubcontractor(c.Request().Context(), in)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, sub)
}

// GetSubcontractor godoc
// @Summary Get subcontractor by id
// @Tags subcontractors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcontractor ID"
// @Success 200 {object} model.Subcontractor
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcontractors/{id} [get]
func (h *SubcontractorHandler) GetSubcontractor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sub, err := h.svc.GetSubcontractor(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, sub)
}

// ListSubcontractors godoc
// @Summary List subcontractors
// @Tags subcontractors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subcontractor
// @Router /subcontractors [get]
func (h *SubcontractorHandler) ListSubcontractors(c echo.Context) error {
	subs, err := h.svc.ListSubcontractors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, subs)
}

// UpdateSubcontractor godoc
// @Summary Update subcontractor fields
// @Tags subcontractors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcontractor ID"
// @Param patch body service.SubcontractorPatch true "Fields to update"
// @Success 200 {object} model.Subcontractor
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcontractors/{id} [put]
func (h *SubcontractorHandler) UpdateSubcontractor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var patch service.SubcontractorPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.svc.UpdateSubcontractor(c.Request().Context(), id, patch)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, sub)
}

// DeleteSubcontractor godoc
// @Summary Delete subcontractor, detaching linked users
// @Tags subcontractors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcontractor ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcontractors/{id} [delete]
func (h *SubcontractorHandler) DeleteSubcontractor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteSubcontractor(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
