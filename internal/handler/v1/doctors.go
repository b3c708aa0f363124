package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type DoctorHandler struct {
	svc *service.DoctorService
}

func NewDoctorHandler(svc *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, doctors)
}

// AddForm has no choice sets; every doctor field is free-form.
func (h *DoctorHandler) AddForm(c *gin.Context) {
	respondOK(c, gin.H{})
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var form forms.DoctorForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	d, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, d)
}

func (h *DoctorHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DoctorHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"doctor": d})
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.DoctorForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	d, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
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
