package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LocationInStore  = "in-store"
	LocationDoorstep = "doorstep"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName    string     `gorm:"not null" json:"customer_name"`
	CustomerPhone   string     `gorm:"not null" json:"customer_phone"`
	CustomerEmail   *string    `json:"customer_email"`
	CustomerAddress *string    `json:"customer_address"`
	ServiceID       *uuid.UUID `gorm:"type:uuid;index" json:"service_id"`
	ServiceName     string     `gorm:"not null" json:"service_name"`
	AppointmentDate string     `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string     `gorm:"not null" json:"appointment_time"`
	LocationType    string     `gorm:"type:varchar(20);not null;default:'in-store'" json:"location_type"` // 'in-store' or 'doorstep'
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           *string    `json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidLocationType reports whether t is a recognized location mode.
func ValidLocationType(t string) bool {
	return t == LocationInStore || t == LocationDoorstep
}

// CanTransition reports whether an appointment may move from one status to
// another. Completed and cancelled are terminal; a pending request must be
// confirmed before it can be completed. Keeping the same status is a no-op
// and always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
