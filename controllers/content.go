// controllers/content.go
package controllers

import (
	"errors"
	"net/http"
	"repairpro-backend/config"
	"repairpro-backend/models"
	"repairpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateSiteContentInput defines the expected JSON structure for a content edit
type UpdateSiteContentInput struct {
	Content models.JSONB `json:"content" binding:"required"`
}

// GetSiteContent returns one editable section of the public site
func GetSiteContent(c *gin.Context) {
	section := c.Param("section")

	var content models.SiteContent
	if err := config.DB.Where("section = ?", section).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Content section not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, content)
}

// GetAllSiteContent lists every section for the admin content editor
func GetAllSiteContent(c *gin.Context) {
	var contents []models.SiteContent
	if err := config.DB.Order("section ASC").Find(&contents).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve site content")
		return
	}

	c.JSON(http.StatusOK, contents)
}

// UpdateSiteContent upserts a section: editing a section that does not exist
// yet creates it
func UpdateSiteContent(c *gin.Context) {
	section := c.Param("section")

	var input UpdateSiteContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	content := models.SiteContent{
		Section: section,
		Content: input.Content,
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&content).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update site content")
		return
	}

	c.JSON(http.StatusOK, content)
}
