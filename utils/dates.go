// utils/dates.go
package utils

import "time"

// DateString formats t the way appointment and blocked-slot dates are stored.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
