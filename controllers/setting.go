// controllers/setting.go
package controllers

import (
	"errors"
	"net/http"
	"repairpro-backend/config"
	"repairpro-backend/models"
	"repairpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateSettingInput defines the expected JSON structure for a setting change
type UpdateSettingInput struct {
	Value string `json:"value" binding:"required"`
}

// GetSetting returns one setting by key; the public site reads the WhatsApp
// contact number through this
func GetSetting(c *gin.Context) {
	key := c.Param("key")

	var setting models.Setting
	if err := config.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Setting not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, setting)
}

// GetSettings lists all settings for the admin console
func GetSettings(c *gin.Context) {
	var settings []models.Setting
	if err := config.DB.Order("key ASC").Find(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSetting changes a setting's value, recording who changed it
func UpdateSetting(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	key := c.Param("key")

	var input UpdateSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var setting models.Setting
	if err := config.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Setting not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	setting.Value = input.Value
	if id, err := uuid.Parse(userID.(string)); err == nil {
		setting.UpdatedBy = &id
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}
