package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() AppointmentForm {
	return AppointmentForm{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
		LocationType:    "in-store",
	}
}

func TestValidateAppointmentForm_Valid(t *testing.T) {
	assert.Nil(t, ValidateAppointmentForm(validForm()))
}

func TestValidateAppointmentForm_RequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*AppointmentForm)
	}{
		{"customer_name", func(f *AppointmentForm) { f.CustomerName = "" }},
		{"customer_phone", func(f *AppointmentForm) { f.CustomerPhone = "" }},
		{"service_name", func(f *AppointmentForm) { f.ServiceName = "" }},
		{"appointment_date", func(f *AppointmentForm) { f.AppointmentDate = "" }},
		{"appointment_time", func(f *AppointmentForm) { f.AppointmentTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := ValidateAppointmentForm(form)
			require.NotNil(t, err)
			assert.Equal(t, tt.field, err.Field)
		})
	}
}

func TestValidateAppointmentForm_WhitespaceOnlyIsEmpty(t *testing.T) {
	form := validForm()
	form.CustomerName = "   "

	err := ValidateAppointmentForm(form)
	require.NotNil(t, err)
	assert.Equal(t, "customer_name", err.Field)
}

func TestValidateAppointmentForm_DoorstepNeedsAddress(t *testing.T) {
	form := validForm()
	form.LocationType = "doorstep"
	form.CustomerAddress = ""

	err := ValidateAppointmentForm(form)
	require.NotNil(t, err)
	assert.Equal(t, "customer_address", err.Field)
}

func TestValidateAppointmentForm_DoorstepWithAddress(t *testing.T) {
	form := validForm()
	form.LocationType = "doorstep"
	form.CustomerAddress = "12 MG Road, Bengaluru"

	assert.Nil(t, ValidateAppointmentForm(form))
}

func TestValidateAppointmentForm_InStoreAddressOptional(t *testing.T) {
	form := validForm()
	form.LocationType = "in-store"
	form.CustomerAddress = ""

	assert.Nil(t, ValidateAppointmentForm(form))
}

func TestValidateAppointmentForm_BadPhone(t *testing.T) {
	form := validForm()
	form.CustomerPhone = "not-a-phone"

	err := ValidateAppointmentForm(form)
	require.NotNil(t, err)
	assert.Equal(t, "customer_phone", err.Field)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+919999999999"))
	assert.True(t, ValidatePhone("9876543210"))
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0123"))
}
