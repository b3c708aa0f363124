package report

import (
	"encoding/json"
	"time"
)

type Type string

const (
	TypePatientHistory     Type = "patient_history"
	TypeAppointmentSummary Type = "appointment_summary"
	TypeBillingSummary     Type = "billing_summary"
	TypeDoctorPerformance  Type = "doctor_performance"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePatientHistory, TypeAppointmentSummary, TypeBillingSummary, TypeDoctorPerformance:
		return true
	}
	return false
}

func Types() []Type {
	return []Type{TypePatientHistory, TypeAppointmentSummary, TypeBillingSummary, TypeDoctorPerformance}
}

// Parameters records the filters a report was generated with. Dates
// are kept as "YYYY-MM-DD" strings, matching the stored form input.
type Parameters struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	PatientID *uint   `json:"patient_id"`
	DoctorID  *uint   `json:"doctor_id"`
}

// Report is a point-in-time snapshot: the payload is computed once at
// generation and rendered as-is afterwards, never recomputed.
type Report struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ReportType  Type        `gorm:"column:report_type;type:varchar(50);not null" json:"report_type"`
	GeneratedBy string      `gorm:"column:generated_by;type:varchar(100);not null" json:"generated_by"`
	GeneratedAt time.Time   `gorm:"column:generated_at;autoCreateTime;index" json:"generated_at"`
	Parameters  *Parameters `gorm:"column:parameters;serializer:json" json:"parameters"`

	// Serialized payload document; schema per report type below.
	Data string `gorm:"column:data;type:text" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) Payload() json.RawMessage {
	return json.RawMessage(r.Data)
}

// Payload schemas, one per report type.

type PatientActivity struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Appointments  int64  `json:"appointments"`
	Prescriptions int64  `json:"prescriptions"`
	Billings      int64  `json:"billings"`
}

type PatientHistoryPayload struct {
	Patients []PatientActivity `json:"patients"`
}

type AppointmentSummaryPayload struct {
	TotalAppointments int `json:"total_appointments"`
	Scheduled         int `json:"scheduled"`
	Completed         int `json:"completed"`
	Cancelled         int `json:"cancelled"`
}

type BillingSummaryPayload struct {
	TotalBillings int     `json:"total_billings"`
	Paid          int     `json:"paid"`
	Pending       int     `json:"pending"`
	TotalAmount   float64 `json:"total_amount"`
}

type DoctorActivity struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Appointments  int64  `json:"appointments"`
	Prescriptions int64  `json:"prescriptions"`
}

type DoctorPerformancePayload struct {
	Doctors []DoctorActivity `json:"doctors"`
}

// GenerateCommand is a validated report request.
type GenerateCommand struct {
	Type        Type
	StartDate   *time.Time
	EndDate     *time.Time
	PatientID   *uint
	DoctorID    *uint
	GeneratedBy string
}
