// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"repairpro-backend/config"
	"repairpro-backend/models"
	"repairpro-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for the public booking form
type CreateAppointmentInput struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	LocationType    string `json:"location_type"`
	Notes           string `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for staff edits
type UpdateAppointmentInput struct {
	CustomerName    *string `json:"customer_name"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerAddress *string `json:"customer_address"`
	ServiceName     *string `json:"service_name"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	LocationType    *string `json:"location_type"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// appointmentFromInput builds the record that gets persisted: status is
// always pending regardless of what the client sent, and blank optional
// fields become NULL rather than empty strings.
func appointmentFromInput(input CreateAppointmentInput) models.Appointment {
	appt := models.Appointment{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ServiceName:     input.ServiceName,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		LocationType:    input.LocationType,
		Status:          models.StatusPending,
	}

	if appt.LocationType == "" {
		appt.LocationType = models.LocationInStore
	}
	if email := strings.TrimSpace(input.CustomerEmail); email != "" {
		appt.CustomerEmail = &email
	}
	if address := strings.TrimSpace(input.CustomerAddress); address != "" {
		appt.CustomerAddress = &address
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		appt.Notes = &notes
	}
	if id, err := uuid.Parse(input.ServiceID); err == nil {
		appt.ServiceID = &id
	}

	return appt
}

// CreateAppointment handles the public booking form submission
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// All form rules run before the database is touched
	if verr := utils.ValidateAppointmentForm(utils.AppointmentForm{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		ServiceName:     input.ServiceName,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		LocationType:    input.LocationType,
	}); verr != nil {
		utils.RespondWithFieldError(c, verr.Field, verr.Message)
		return
	}

	if input.LocationType != "" && !models.ValidLocationType(input.LocationType) {
		utils.RespondWithFieldError(c, "location_type", "Location must be in-store or doorstep")
		return
	}

	// The booking form and the blocking UI share one slot catalog
	if !models.IsValidTimeSlot(input.AppointmentTime) {
		utils.RespondWithFieldError(c, "appointment_time", "Unknown time slot")
		return
	}

	appt := appointmentFromInput(input)

	// The chosen slot is not re-checked against blocked_slots here; a block
	// landing between the availability query and this write is resolved by
	// staff, not rejected.
	if err := config.DB.Create(&appt).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	if notifier != nil {
		go notifier.SendBookingAlert(appt)
	}

	c.JSON(http.StatusCreated, appt)
}

// GetAppointments retrieves all appointments for the admin console
func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, "id = ?", apptUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment applies staff edits, holding status changes to the
// pending -> confirmed -> completed lifecycle (cancellable until completed)
func UpdateAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, "id = ?", apptUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		if !models.CanTransition(appt.Status, *input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest,
				"Cannot change status from "+appt.Status+" to "+*input.Status)
			return
		}
		appt.Status = *input.Status
	}

	if input.CustomerName != nil {
		appt.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		appt.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		appt.CustomerEmail = input.CustomerEmail
	}
	if input.CustomerAddress != nil {
		appt.CustomerAddress = input.CustomerAddress
	}
	if input.ServiceName != nil {
		appt.ServiceName = *input.ServiceName
	}
	if input.AppointmentDate != nil {
		appt.AppointmentDate = *input.AppointmentDate
	}
	if input.AppointmentTime != nil {
		if !models.IsValidTimeSlot(*input.AppointmentTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown time slot")
			return
		}
		appt.AppointmentTime = *input.AppointmentTime
	}
	if input.LocationType != nil {
		if !models.ValidLocationType(*input.LocationType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Location must be in-store or doorstep")
			return
		}
		appt.LocationType = *input.LocationType
	}
	if input.Notes != nil {
		appt.Notes = input.Notes
	}

	if err := config.DB.Save(&appt).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment soft deletes an appointment
func DeleteAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", apptUUID).Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
