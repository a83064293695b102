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

var errInvalidCaseResultForm = pkg.NewDomainErrorSimple("INVALID_CASE_RESULT_FORM", "Invalid case result form data", http.StatusBadRequest)

// CaseResultHandler handles the post-hearing form and the dashboard views.

type CaseResultHandler struct {
	usecase usecase.ICaseResultUseCase
}

func NewCaseResultHandler(uc usecase.ICaseResultUseCase) *CaseResultHandler {
	return &CaseResultHandler{usecase: uc}
}

// CreateCaseResult accepts the post-hearing form. The attorney mail is
// best-effort: a transport miss shows up in the notifications block, not
// in the HTTP status.
func (h *CaseResultHandler) CreateCaseResult(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(errInvalidCaseResultForm.HTTPStatus, errInvalidCaseResultForm.ToHTTPError())
		return
	}

	result, report, err := h.usecase.SubmitResult(c.Request.Context(), request.ParseCaseResultIntake(c.Request.PostForm))
	if err != nil {
		appErr := mapCaseResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCaseResultSubmission(result, report))
}

// EditCaseResult overwrites the submitted fields and sends nothing.
func (h *CaseResultHandler) EditCaseResult(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(errInvalidCaseResultForm.HTTPStatus, errInvalidCaseResultForm.ToHTTPError())
		return
	}

	result, err := h.usecase.EditResult(c.Request.Context(), c.Param("id"), request.ParseCaseResultEdit(c.Request.PostForm))
	if err != nil {
		appErr := mapCaseResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCaseResult(result))
}

func (h *CaseResultHandler) GetCaseResult(c *gin.Context) {
	result, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCaseResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCaseResult(result))
}

func (h *CaseResultHandler) ListCaseResults(c *gin.Context) {
	results, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCaseResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCaseResults(results))
}

func mapCaseResultError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseResultID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseResultNotFound):
		return pkg.NewDomainErrorSimple("CASE_RESULT_NOT_FOUND", "Case result not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
