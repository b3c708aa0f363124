package appointment

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func Statuses() []Status {
	return []Status{StatusScheduled, StatusCompleted, StatusCancelled}
}

type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	PatientID uint `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  uint `gorm:"column:doctor_id;not null;index" json:"doctor_id"`

	AppointmentDate time.Time `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	// Time of day in "HH:MM"; the underlying stores have no portable
	// bare TIME type, so the form layer owns the format.
	AppointmentTime string `gorm:"column:appointment_time;type:varchar(5);not null" json:"appointment_time"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes  string `gorm:"column:notes;type:text" json:"notes"`
}

func (Appointment) TableName() string {
	return "appointments"
}

type Command struct {
	PatientID       uint
	DoctorID        uint
	AppointmentDate time.Time
	AppointmentTime string
	Status          Status
	Notes           string
}
