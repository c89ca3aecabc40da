package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every outbound message attempt so staff can audit
// what the shop actually sent.
type NotificationLog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id"`
	Kind          string     `gorm:"type:varchar(30)" json:"kind"` // booking_alert, appointment_reminder
	Recipient     string     `json:"recipient"`
	Message       string     `gorm:"type:text" json:"message"`
	Channel       string     `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	Status        string     `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage  string     `gorm:"type:text" json:"error_message"`
	SentAt        time.Time  `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
