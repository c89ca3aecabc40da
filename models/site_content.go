package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteContent holds one editable section of the marketing site (hero copy,
// about text, contact details and so on) as a free-form JSON document.
type SiteContent struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Section string    `gorm:"uniqueIndex;not null" json:"section"`
	Content JSONB     `gorm:"type:jsonb;default:'{}'" json:"content"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SiteContent) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Custom JSONB type for free-form content documents
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
