package doctor

import (
	"strings"
	"time"
)

type Doctor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	FirstName     string `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName      string `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Specialty     string `gorm:"column:specialty;type:varchar(100);not null" json:"specialty"`
	Phone         string `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Email         string `gorm:"column:email;type:varchar(120);uniqueIndex;not null" json:"email"`
	LicenseNumber string `gorm:"column:license_number;type:varchar(50);uniqueIndex;not null" json:"license_number"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

type Command struct {
	FirstName     string
	LastName      string
	Specialty     string
	Phone         string
	Email         string
	LicenseNumber string
}
