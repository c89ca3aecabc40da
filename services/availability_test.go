package services

import (
	"repairpro-backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blockedFor(date string, labels ...string) []models.BlockedSlot {
	slots := make([]models.BlockedSlot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, models.BlockedSlot{Date: date, TimeSlot: label})
	}
	return slots
}

func TestComputeAvailableSlots_NothingBlocked(t *testing.T) {
	available := ComputeAvailableSlots(nil)

	assert.Equal(t, models.TimeSlots, available)
}

func TestComputeAvailableSlots_EverythingBlocked(t *testing.T) {
	blocked := blockedFor("2025-06-01", models.TimeSlots...)

	available := ComputeAvailableSlots(blocked)

	assert.Empty(t, available)
}

func TestComputeAvailableSlots_TwoBlocked(t *testing.T) {
	blocked := blockedFor("2025-06-01", "11:00 AM - 12:00 PM", "02:00 PM - 03:00 PM")

	available := ComputeAvailableSlots(blocked)

	assert.Len(t, available, 9)
	assert.NotContains(t, available, "11:00 AM - 12:00 PM")
	assert.NotContains(t, available, "02:00 PM - 03:00 PM")

	// Remaining slots keep catalog order
	expected := []string{
		"09:00 AM - 10:00 AM",
		"10:00 AM - 11:00 AM",
		"12:00 PM - 01:00 PM",
		"03:00 PM - 04:00 PM",
		"04:00 PM - 05:00 PM",
		"05:00 PM - 06:00 PM",
		"06:00 PM - 07:00 PM",
		"07:00 PM - 08:00 PM",
		"08:00 PM - 09:00 PM",
	}
	assert.Equal(t, expected, available)
}

func TestComputeAvailableSlots_SubsetOfCatalog(t *testing.T) {
	blocked := blockedFor("2025-06-01", "09:00 AM - 10:00 AM")

	available := ComputeAvailableSlots(blocked)

	for _, slot := range available {
		assert.True(t, models.IsValidTimeSlot(slot), "unexpected slot %q", slot)
	}
}

func TestComputeAvailableSlots_UnknownLabelIgnored(t *testing.T) {
	// A stray row with a label outside the catalog must not invent or remove
	// catalog entries
	blocked := blockedFor("2025-06-01", "01:00 PM - 02:00 PM")

	available := ComputeAvailableSlots(blocked)

	assert.Equal(t, models.TimeSlots, available)
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	blocked := blockedFor("2025-06-01", "10:00 AM - 11:00 AM", "08:00 PM - 09:00 PM")

	first := ComputeAvailableSlots(blocked)
	second := ComputeAvailableSlots(blocked)

	assert.Equal(t, first, second)
}
