package handlers

import (
	"errors"
	"net/http"

	request "dischley_intake/internal/adapter/http/dto/request"
	response "dischley_intake/internal/adapter/http/dto/response"
	"dischley_intake/internal/usecase"
	"dischley_intake/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadForm = pkg.NewDomainErrorSimple("INVALID_LEAD_FORM", "Invalid lead form data", http.StatusBadRequest)

// LeadHandler handles the intake form, the staff follow-up form, and the
// lead views. All routes run behind the shared-credential middleware.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead accepts a fresh intake submission. Persistence is the only
// success gate: the response is 201 even when the attorney mail or the
// CRM sync failed, with the misses reported in the notifications block.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(errInvalidLeadForm.HTTPStatus, errInvalidLeadForm.ToHTTPError())
		return
	}

	lead, report, err := h.usecase.SubmitIntake(c.Request.Context(), request.ParseLeadIntake(c.Request.PostForm))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLeadSubmission(lead, report))
}

// UpdateLead applies the staff follow-up form and triggers the fresh
// notification round (attorneys always, client when LVM plus email).
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(errInvalidLeadForm.HTTPStatus, errInvalidLeadForm.ToHTTPError())
		return
	}

	lead, report, err := h.usecase.ApplyStaffUpdate(c.Request.Context(), c.Param("id"), request.ParseLeadStaffUpdate(c.Request.PostForm))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeadSubmission(lead, report))
}

// EditLead applies the abbreviated edit form. No notification of any kind.
func (h *LeadHandler) EditLead(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(errInvalidLeadForm.HTTPStatus, errInvalidLeadForm.ToHTTPError())
		return
	}

	lead, err := h.usecase.QuickEdit(c.Request.Context(), c.Param("id"), request.ParseLeadQuickEdit(c.Request.PostForm))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLeadNameRequired):
		return pkg.NewDomainErrorSimple("LEAD_NAME_REQUIRED", "Lead name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
