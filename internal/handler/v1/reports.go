package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/domain/report"
	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type ReportHandler struct {
	svc        *service.ReportService
	patientSvc *service.PatientService
	doctorSvc  *service.DoctorService
}

func NewReportHandler(
	svc *service.ReportService,
	patientSvc *service.PatientService,
	doctorSvc *service.DoctorService,
) *ReportHandler {
	return &ReportHandler{svc: svc, patientSvc: patientSvc, doctorSvc: doctorSvc}
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, reports)
}

// GenerateForm lists the report types and the entity filters each one
// accepts.
func (h *ReportHandler) GenerateForm(c *gin.Context) {
	ctx := c.Request.Context()
	patients, err := patientChoices(ctx, h.patientSvc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	doctors, err := doctorChoices(ctx, h.doctorSvc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{
		"report_types": report.Types(),
		"patients":     patients,
		"doctors":      doctors,
	})
}

func (h *ReportHandler) Generate(c *gin.Context) {
	var form forms.ReportForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	r, err := h.svc.Generate(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, reportResponse(r))
}

func (h *ReportHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, reportResponse(r))
}

func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}

// reportResponse inlines the stored payload document next to the
// report metadata.
func reportResponse(r *report.Report) gin.H {
	return gin.H{
		"report":  r,
		"payload": r.Payload(),
	}
}
