package v1

import (
	"github.com/gin-gonic/gin"

	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/forms"
	"eyeflow-api/internal/service"
)

type BillingHandler struct {
	svc            *service.BillingService
	patientSvc     *service.PatientService
	appointmentSvc *service.AppointmentService
}

func NewBillingHandler(
	svc *service.BillingService,
	patientSvc *service.PatientService,
	appointmentSvc *service.AppointmentService,
) *BillingHandler {
	return &BillingHandler{svc: svc, patientSvc: patientSvc, appointmentSvc: appointmentSvc}
}

func (h *BillingHandler) List(c *gin.Context) {
	billings, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, billings)
}

func (h *BillingHandler) AddForm(c *gin.Context) {
	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, choices)
}

func (h *BillingHandler) Create(c *gin.Context) {
	var form forms.BillingForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	b, err := h.svc.Create(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, b)
}

func (h *BillingHandler) View(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, b)
}

func (h *BillingHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	choices, err := h.choices(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	choices["billing"] = b
	respondOK(c, choices)
}

func (h *BillingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form forms.BillingForm
	if !bindJSON(c, &form) {
		return
	}

	cmd, errs := form.Validate()
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, b)
}

func (h *BillingHandler) Delete(c *gin.Context) {
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

func (h *BillingHandler) choices(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	patients, err := patientChoices(ctx, h.patientSvc)
	if err != nil {
		return nil, err
	}
	appts, err := appointmentChoices(ctx, h.appointmentSvc)
	if err != nil {
		return nil, err
	}

	// The appointment link is optional; id 0 submits as "none".
	withNone := make([]ChoiceOption, 0, len(appts)+1)
	withNone = append(withNone, ChoiceOption{ID: 0, Label: "No Appointment"})
	withNone = append(withNone, appts...)

	return gin.H{
		"patients":     patients,
		"appointments": withNone,
		"statuses":     billing.Statuses(),
	}, nil
}
