// controllers/blocked_slot.go
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

// CreateBlockedSlotInput defines the expected JSON structure for blocking a slot
type CreateBlockedSlotInput struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Reason   string `json:"reason"`
}

// GetBlockedSlots lists blocked slots for the admin console, optionally
// filtered to one date with ?date=YYYY-MM-DD
func GetBlockedSlots(c *gin.Context) {
	query := config.DB.Order("date ASC, time_slot ASC")
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var slots []models.BlockedSlot
	if err := query.Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blocked slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateBlockedSlot withdraws one slot on one date from booking
func CreateBlockedSlot(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateBlockedSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Must be a label from the shared catalog, or blocking would never match
	// anything the booking form offers
	if !models.IsValidTimeSlot(input.TimeSlot) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown time slot")
		return
	}

	// A second identical block would be pure noise
	var existing models.BlockedSlot
	if err := config.DB.Where("date = ? AND time_slot = ?", input.Date, input.TimeSlot).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "This slot is already blocked")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	slot := models.BlockedSlot{
		Date:     input.Date,
		TimeSlot: input.TimeSlot,
	}
	if reason := strings.TrimSpace(input.Reason); reason != "" {
		slot.Reason = &reason
	}
	if id, err := uuid.Parse(userID.(string)); err == nil {
		slot.CreatedBy = &id
	}

	if err := config.DB.Create(&slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to block slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// DeleteBlockedSlot reopens a previously blocked slot
func DeleteBlockedSlot(c *gin.Context) {
	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid blocked slot ID format")
		return
	}

	result := config.DB.Where("id = ?", slotUUID).Delete(&models.BlockedSlot{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete blocked slot")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Blocked slot not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blocked slot deleted successfully"})
}
