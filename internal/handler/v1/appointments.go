package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type AppointmentHandler struct {
	svc        *service.AppointmentService
	patientSvc *service.PatientService
	doctorSvc  *service.DoctorService
}

func NewAppointmentHandler(
	svc *service.AppointmentService,
	patientSvc *service.PatientService,
	doctorSvc *service.DoctorService,
) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, patientSvc: patientSvc, doctorSvc: doctorSvc}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appts)
}

func (h *AppointmentHandler) AddForm(c *gin.Context) {
	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, choices)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var form forms.AppointmentForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	a, err := h.svc.Schedule(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a)
}

func (h *AppointmentHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	choices["appointment"] = a
	respondOK(c, choices)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.AppointmentForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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

func (h *AppointmentHandler) choices(c *gin.Context) (gin.H, error) {
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
		"statuses": appointment.Statuses(),
	}, nil
}
