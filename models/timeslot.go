package models

// TimeSlots is the single source of truth for bookable appointment windows.
// Booking, blocking and availability all read from this list, so the labels
// stored in appointments and blocked_slots always line up. The 01:00-02:00 PM
// gap is the lunch break.
var TimeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
	"05:00 PM - 06:00 PM",
	"06:00 PM - 07:00 PM",
	"07:00 PM - 08:00 PM",
	"08:00 PM - 09:00 PM",
}

// IsValidTimeSlot reports whether label is one of the catalog entries.
func IsValidTimeSlot(label string) bool {
	for _, slot := range TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
