// controllers/user.go
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

// UpdateUserInput defines the expected JSON structure for profile edits by staff
type UpdateUserInput struct {
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

// GetUsers lists every profile for the admin console
func GetUsers(c *gin.Context) {
	var profiles []models.Profile
	if err := config.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateUser edits a profile; this is where admins grant and revoke the admin
// role. Nothing stops an admin demoting themselves or the last admin; the
// bootstrap env var is the recovery path.
func UpdateUser(c *gin.Context) {
	profileUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile, "id = ?", profileUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			utils.RespondWithError(c, http.StatusBadRequest, "Role must be user or admin")
			return
		}
		profile.Role = *input.Role
	}
	if input.Username != nil {
		profile.Username = *input.Username
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, profile)
}
