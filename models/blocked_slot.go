package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedSlot withdraws one (date, time slot) pair from customer booking.
// Rows are created and deleted by staff and never updated in place.
type BlockedSlot struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Date      string     `gorm:"type:date;not null;index" json:"date"`
	TimeSlot  string     `gorm:"not null" json:"time_slot"`
	Reason    *string    `json:"reason"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *BlockedSlot) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
