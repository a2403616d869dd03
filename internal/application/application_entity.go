package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeave        = "LEAVE"
	TypeWorkFromHome = "WORK_FROM_HOME"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Application struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationType string    `gorm:"type:varchar(20);not null"`
	FromDate        time.Time `gorm:"type:date;not null;index"`
	ToDate          time.Time `gorm:"type:date;not null"`
	Subject         string    `gorm:"size:255"`
	Reason          string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'PENDING'"`

	// Balances are caller-supplied, never derived.
	BalanceBeforeApproval int `gorm:"not null;default:0"`
	BalanceAfterApproval  int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func ValidType(t string) bool {
	switch t {
	case TypeLeave, TypeWorkFromHome:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
