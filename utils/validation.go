// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidationError names the first form field that failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AppointmentForm carries the booking form fields that validation looks at.
type AppointmentForm struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ServiceName     string
	AppointmentDate string
	AppointmentTime string
	LocationType    string
}

// ValidateAppointmentForm applies the booking form rules: every core field is
// required, and a doorstep visit needs an address. It runs before anything is
// persisted; a non-nil result means the submission must be aborted.
func ValidateAppointmentForm(f AppointmentForm) *ValidationError {
	if strings.TrimSpace(f.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Message: "Name is required"}
	}
	if strings.TrimSpace(f.CustomerPhone) == "" {
		return &ValidationError{Field: "customer_phone", Message: "Phone number is required"}
	}
	if !ValidatePhone(f.CustomerPhone) {
		return &ValidationError{Field: "customer_phone", Message: "Invalid phone number format"}
	}
	if strings.TrimSpace(f.ServiceName) == "" {
		return &ValidationError{Field: "service_name", Message: "Service is required"}
	}
	if strings.TrimSpace(f.AppointmentDate) == "" {
		return &ValidationError{Field: "appointment_date", Message: "Date is required"}
	}
	if strings.TrimSpace(f.AppointmentTime) == "" {
		return &ValidationError{Field: "appointment_time", Message: "Time slot is required"}
	}
	if f.LocationType == "doorstep" && strings.TrimSpace(f.CustomerAddress) == "" {
		return &ValidationError{Field: "customer_address", Message: "Address is required for doorstep service"}
	}
	return nil
}
