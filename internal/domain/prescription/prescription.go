package prescription

import "time"

// Prescription holds a corrective-lens prescription: sphere, cylinder
// and axis per eye, pupillary distance, and a validity duration.
type Prescription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	PatientID uint `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  uint `gorm:"column:doctor_id;not null;index" json:"doctor_id"`

	PrescriptionDate time.Time `gorm:"column:prescription_date;not null" json:"prescription_date"`

	SphereLeft   *float64 `gorm:"column:sphere_left" json:"sphere_left"`
	CylinderLeft *float64 `gorm:"column:cylinder_left" json:"cylinder_left"`
	AxisLeft     *int     `gorm:"column:axis_left" json:"axis_left"`

	SphereRight   *float64 `gorm:"column:sphere_right" json:"sphere_right"`
	CylinderRight *float64 `gorm:"column:cylinder_right" json:"cylinder_right"`
	AxisRight     *int     `gorm:"column:axis_right" json:"axis_right"`

	PupillaryDistance *float64 `gorm:"column:pupillary_distance" json:"pupillary_distance"`
	DurationMonths    int      `gorm:"column:duration_months;not null" json:"duration_months"`
	Notes             string   `gorm:"column:notes;type:text" json:"notes"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

type Command struct {
	PatientID         uint
	DoctorID          uint
	PrescriptionDate  time.Time
	SphereLeft        *float64
	CylinderLeft      *float64
	AxisLeft          *int
	SphereRight       *float64
	CylinderRight     *float64
	AxisRight         *int
	PupillaryDistance *float64
	DurationMonths    int
	Notes             string
}
