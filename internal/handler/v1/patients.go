package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, patients)
}

// AddForm describes the blank registration form: the valid gender
// choices the client should render.
func (h *PatientHandler) AddForm(c *gin.Context) {
	respondOK(c, gin.H{"genders": patient.Genders()})
}

func (h *PatientHandler) Create(c *gin.Context) {
	var form forms.PatientForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	p, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *PatientHandler) View(c *gin.Context) {
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

// EditForm returns the current record together with the form choices,
// so the client can pre-fill the edit view.
func (h *PatientHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"patient": p, "genders": patient.Genders()})
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.PatientForm
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

func (h *PatientHandler) Delete(c *gin.Context) {
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
