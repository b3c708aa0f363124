package billing

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

func Statuses() []Status {
	return []Status{StatusPending, StatusPaid, StatusCancelled}
}

type Billing struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	PatientID uint `gorm:"column:patient_id;not null;index" json:"patient_id"`
	// Optional: a billing record may exist without an appointment.
	AppointmentID *uint `gorm:"column:appointment_id;index" json:"appointment_id"`

	Amount float64 `gorm:"column:amount;not null" json:"amount"`
	Status Status  `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`

	PaymentDate   *time.Time `gorm:"column:payment_date" json:"payment_date"`
	PaymentMethod string     `gorm:"column:payment_method;type:varchar(50)" json:"payment_method"`
	Notes         string     `gorm:"column:notes;type:text" json:"notes"`
}

func (Billing) TableName() string {
	return "billings"
}

type Command struct {
	PatientID     uint
	AppointmentID *uint
	Amount        float64
	Status        Status
	PaymentDate   *time.Time
	PaymentMethod string
	Notes         string
}
