package eyetest

import "time"

// EyeTestResult records the findings of a single eye examination
// performed during an appointment.
type EyeTestResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	AppointmentID uint `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	PatientID     uint `gorm:"column:patient_id;not null;index" json:"patient_id"`

	TestDate time.Time `gorm:"column:test_date;not null" json:"test_date"`

	VisualAcuityLeft  string `gorm:"column:visual_acuity_left;type:varchar(20)" json:"visual_acuity_left"`
	VisualAcuityRight string `gorm:"column:visual_acuity_right;type:varchar(20)" json:"visual_acuity_right"`

	// Intraocular pressure in mmHg, non-negative when recorded.
	IntraocularPressureLeft  *float64 `gorm:"column:intraocular_pressure_left" json:"intraocular_pressure_left"`
	IntraocularPressureRight *float64 `gorm:"column:intraocular_pressure_right" json:"intraocular_pressure_right"`

	FundusExamination string `gorm:"column:fundus_examination;type:text" json:"fundus_examination"`
	OtherFindings     string `gorm:"column:other_findings;type:text" json:"other_findings"`
}

func (EyeTestResult) TableName() string {
	return "eye_test_results"
}

type Command struct {
	AppointmentID            uint
	PatientID                uint
	TestDate                 time.Time
	VisualAcuityLeft         string
	VisualAcuityRight        string
	IntraocularPressureLeft  *float64
	IntraocularPressureRight *float64
	FundusExamination        string
	OtherFindings            string
}
