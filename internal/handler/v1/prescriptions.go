package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type PrescriptionHandler struct {
	svc        *service.PrescriptionService
	patientSvc *service.PatientService
	doctorSvc  *service.DoctorService
}

func NewPrescriptionHandler(
	svc *service.PrescriptionService,
	patientSvc *service.PatientService,
	doctorSvc *service.DoctorService,
) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc, patientSvc: patientSvc, doctorSvc: doctorSvc}
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	prescriptions, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, prescriptions)
}

func (h *PrescriptionHandler) AddForm(c *gin.Context) {
	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, choices)
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var form forms.PrescriptionForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	p, err := h.svc.Issue(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *PrescriptionHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PrescriptionHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	choices["prescription"] = p
	respondOK(c, choices)
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.PrescriptionForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
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

func (h *PrescriptionHandler) choices(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	patients, err := patientChoices(ctx, h.patientSvc)
	if err != nil {
		return nil, err
	}
	doctors, err := doctorChoices(ctx, h.doctorSvc)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"patients": patients,
		"doctors":  doctors,
	}, nil
}
