package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingWhatsAppNumber is the key for the shop's WhatsApp contact number,
// shown on the public contact page and used for booking alerts.
const SettingWhatsAppNumber = "whatsapp_number"

type Setting struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Key         string     `gorm:"uniqueIndex;not null" json:"key"`
	Value       string     `gorm:"type:text;not null" json:"value"`
	Description *string    `json:"description"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
