package patient

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Genders lists the valid choices for form descriptors.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	FirstName   string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender      Gender    `gorm:"column:gender;type:varchar(10);not null" json:"gender"`
	Phone       string    `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Email       string    `gorm:"column:email;type:varchar(120);uniqueIndex;not null" json:"email"`
	Address     string    `gorm:"column:address;type:text;not null" json:"address"`

	MedicalHistory string `gorm:"column:medical_history;type:text" json:"medical_history"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Command carries a validated, fully-typed patient record ready for
// storage. Edits are whole-record, so create and update share it.
type Command struct {
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	Gender         Gender
	Phone          string
	Email          string
	Address        string
	MedicalHistory string
}
