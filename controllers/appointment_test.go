package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"repairpro-backend/models"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFromInput_ForcesPendingAndNormalizes(t *testing.T) {
	appt := appointmentFromInput(CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
		LocationType:    "in-store",
	})

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Nil(t, appt.CustomerAddress, "blank address must be stored as NULL")
	assert.Nil(t, appt.CustomerEmail)
	assert.Nil(t, appt.Notes)
	assert.Nil(t, appt.ServiceID)
}

func TestAppointmentFromInput_KeepsProvidedOptionals(t *testing.T) {
	appt := appointmentFromInput(CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		CustomerEmail:   "a.kumar@example.com",
		CustomerAddress: "12 MG Road",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
		LocationType:    "doorstep",
		Notes:           "Screen flickers",
	})

	require.NotNil(t, appt.CustomerEmail)
	assert.Equal(t, "a.kumar@example.com", *appt.CustomerEmail)
	require.NotNil(t, appt.CustomerAddress)
	assert.Equal(t, "12 MG Road", *appt.CustomerAddress)
	require.NotNil(t, appt.Notes)
	assert.Equal(t, "Screen flickers", *appt.Notes)
	assert.Equal(t, models.StatusPending, appt.Status)
}

func TestAppointmentFromInput_DefaultsLocationType(t *testing.T) {
	appt := appointmentFromInput(CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
	})

	assert.Equal(t, models.LocationInStore, appt.LocationType)
}

func bookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/appointments", CreateAppointment)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// config.DB is nil in these tests, so reaching the database would panic: a
// clean 400 doubles as proof that validation rejected the form before any
// persistence call.
func TestCreateAppointment_RejectsDoorstepWithoutAddress(t *testing.T) {
	r := bookingRouter()

	w := postJSON(r, "/api/appointments", CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
		LocationType:    "doorstep",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "customer_address", body["field"])
}

func TestCreateAppointment_RejectsMissingRequiredFields(t *testing.T) {
	r := bookingRouter()

	w := postJSON(r, "/api/appointments", CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		AppointmentDate: "2025-06-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointment_RejectsUnknownTimeSlot(t *testing.T) {
	r := bookingRouter()

	w := postJSON(r, "/api/appointments", CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "01:00 PM - 02:00 PM", // lunch break, not in the catalog
		LocationType:    "in-store",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "appointment_time", body["field"])
}

func TestCreateAppointment_RejectsUnknownLocationType(t *testing.T) {
	r := bookingRouter()

	w := postJSON(r, "/api/appointments", CreateAppointmentInput{
		CustomerName:    "A. Kumar",
		CustomerPhone:   "+919999999999",
		ServiceName:     "Laptop Repair",
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00 AM - 11:00 AM",
		LocationType:    "remote",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
