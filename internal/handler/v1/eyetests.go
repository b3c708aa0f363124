package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type EyeTestHandler struct {
	svc            *service.EyeTestService
	appointmentSvc *service.AppointmentService
	patientSvc     *service.PatientService
}

func NewEyeTestHandler(
	svc *service.EyeTestService,
	appointmentSvc *service.AppointmentService,
	patientSvc *service.PatientService,
) *EyeTestHandler {
	return &EyeTestHandler{svc: svc, appointmentSvc: appointmentSvc, patientSvc: patientSvc}
}

func (h *EyeTestHandler) List(c *gin.Context) {
	results, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, results)
}

func (h *EyeTestHandler) AddForm(c *gin.Context) {
	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, choices)
}

func (h *EyeTestHandler) Create(c *gin.Context) {
	var form forms.EyeTestResultForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	r, err := h.svc.Record(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, r)
}

func (h *EyeTestHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, r)
}

func (h *EyeTestHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	choices["eye_test_result"] = r
	respondOK(c, choices)
}

func (h *EyeTestHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.EyeTestResultForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	r, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, r)
}

func (h *EyeTestHandler) Delete(c *gin.Context) {
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

func (h *EyeTestHandler) choices(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	appts, err := appointmentChoices(ctx, h.appointmentSvc)
	if err != nil {
		return nil, err
	}
	patients, err := patientChoices(ctx, h.patientSvc)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"appointments": appts,
		"patients":     patients,
	}, nil
}
