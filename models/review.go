package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName string    `gorm:"not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"` // 1 to 5
	ReviewText   string    `gorm:"type:text;not null" json:"review_text"`
	ServiceType  *string   `json:"service_type"`
	IsApproved   bool      `gorm:"default:false" json:"is_approved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
