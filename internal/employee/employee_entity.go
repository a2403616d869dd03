package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID     *uuid.UUID `gorm:"type:uuid;index"`
	FirstName        string     `gorm:"size:255;not null"`
	LastName         *string    `gorm:"size:255"`
	DateOfBirth      time.Time  `gorm:"type:date"`
	Gender           string     `gorm:"type:varchar(10);not null"`
	PhoneNumber      string     `gorm:"size:32;not null;uniqueIndex:uq_employee_phone"`
	PersonalEmailID  string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	IsDepartmentHead bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
