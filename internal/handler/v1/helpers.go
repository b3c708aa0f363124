package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/eyetest"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
	"eyeflow-api/internal/domain/report"
	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/repository"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ChoiceOption is one selectable entry of a form descriptor: the
// client renders these as dropdown options.
type ChoiceOption struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondValidationErrors(c *gin.Context, errs forms.Errors) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "validation failed",
		Fields: errs,
	})
}

func respondServiceError(c *gin.Context, err error) {
	var fieldErrs forms.Errors
	if errors.As(err, &fieldErrs) {
		respondValidationErrors(c, fieldErrs)
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, eyetest.ErrResultNotFound),
		errors.Is(err, prescription.ErrPrescriptionNotFound),
		errors.Is(err, billing.ErrBillingNotFound),
		errors.Is(err, report.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrEmailTaken),
		errors.Is(err, doctor.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   err.Error(),
			Code:    "DUPLICATE",
			Details: map[string]string{"email": "already in use"},
		})

	case errors.Is(err, doctor.ErrLicenseNumberTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   err.Error(),
			Code:    "DUPLICATE",
			Details: map[string]string{"license_number": "already in use"},
		})

	case errors.Is(err, repository.ErrDependentRecords):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: err.Error(),
			Code:  "DEPENDENT_RECORDS",
		})

	case errors.Is(err, report.ErrInvalidReportType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
