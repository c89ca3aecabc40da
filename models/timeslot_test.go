package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotCatalog(t *testing.T) {
	assert.Len(t, TimeSlots, 11)
	assert.Equal(t, "09:00 AM - 10:00 AM", TimeSlots[0])
	assert.Equal(t, "08:00 PM - 09:00 PM", TimeSlots[len(TimeSlots)-1])

	// The lunch hour is not bookable
	assert.NotContains(t, TimeSlots, "01:00 PM - 02:00 PM")
}

func TestIsValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, IsValidTimeSlot(slot), slot)
	}
	assert.False(t, IsValidTimeSlot("01:00 PM - 02:00 PM"))
	assert.False(t, IsValidTimeSlot("9:00 AM - 10:00 AM"))
	assert.False(t, IsValidTimeSlot(""))
}
