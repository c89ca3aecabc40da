// controllers/review.go
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

// CreateReviewInput defines the expected JSON structure for the public review form
type CreateReviewInput struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText   string `json:"review_text" binding:"required"`
	ServiceType  string `json:"service_type"`
}

// UpdateReviewInput defines the expected JSON structure for staff edits
type UpdateReviewInput struct {
	CustomerName *string `json:"customer_name"`
	Rating       *int    `json:"rating"`
	ReviewText   *string `json:"review_text"`
	ServiceType  *string `json:"service_type"`
	IsApproved   *bool   `json:"is_approved"`
}

// CreateReview accepts a public testimonial; it stays hidden until approved
func CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review := models.Review{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		ReviewText:   input.ReviewText,
		IsApproved:   false,
	}
	if serviceType := strings.TrimSpace(input.ServiceType); serviceType != "" {
		review.ServiceType = &serviceType
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetApprovedReviews lists the reviews shown on the public site
func GetApprovedReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("is_approved = ?", true).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetAllReviews lists every review, approved or not, for the admin console
func GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// UpdateReview edits a review; flipping is_approved publishes or hides it
func UpdateReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	var input UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var review models.Review
	if err := config.DB.First(&review, "id = ?", reviewUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		review.Rating = *input.Rating
	}
	if input.CustomerName != nil {
		review.CustomerName = *input.CustomerName
	}
	if input.ReviewText != nil {
		review.ReviewText = *input.ReviewText
	}
	if input.ServiceType != nil {
		review.ServiceType = input.ServiceType
	}
	if input.IsApproved != nil {
		review.IsApproved = *input.IsApproved
	}

	if err := config.DB.Save(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview soft deletes a review
func DeleteReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	result := config.DB.Where("id = ?", reviewUUID).Delete(&models.Review{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
