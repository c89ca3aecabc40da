// services/availability.go
package services

import (
	"log"
	"repairpro-backend/models"

	"gorm.io/gorm"
)

// ComputeAvailableSlots returns the slot catalog minus every label present in
// blocked, preserving catalog order. Labels in blocked that are not part of
// the catalog are ignored.
func ComputeAvailableSlots(blocked []models.BlockedSlot) []string {
	blockedSet := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.TimeSlot] = struct{}{}
	}

	available := make([]string, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		if _, ok := blockedSet[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// AvailableSlotsForDate fetches the blocked slots for date and subtracts them
// from the catalog. With no date selected there is nothing to filter against,
// so the full catalog is returned. A failed fetch also returns the full
// catalog: booking stays open and staff sort out any collision by hand,
// rather than every customer being turned away because one query failed.
func AvailableSlotsForDate(db *gorm.DB, date string) []string {
	if date == "" {
		return ComputeAvailableSlots(nil)
	}

	var blocked []models.BlockedSlot
	if err := db.Where("date = ?", date).Find(&blocked).Error; err != nil {
		log.Printf("availability: failed to load blocked slots for %s: %v", date, err)
		return ComputeAvailableSlots(nil)
	}

	return ComputeAvailableSlots(blocked)
}
