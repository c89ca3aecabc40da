// controllers/dashboard.go
package controllers

import (
	"net/http"
	"repairpro-backend/config"
	"repairpro-backend/models"

	"github.com/gin-gonic/gin"
)

// GetStatistics returns the counts shown on the admin dashboard
func GetStatistics(c *gin.Context) {
	var totalAppointments int64
	config.DB.Model(&models.Appointment{}).Count(&totalAppointments)

	var pendingAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusPending).Count(&pendingAppointments)

	var totalReviews int64
	config.DB.Model(&models.Review{}).Count(&totalReviews)

	var unapprovedReviews int64
	config.DB.Model(&models.Review{}).
		Where("is_approved = ?", false).Count(&unapprovedReviews)

	var totalServices int64
	config.DB.Model(&models.Service{}).Count(&totalServices)

	c.JSON(http.StatusOK, gin.H{
		"totalAppointments":   totalAppointments,
		"pendingAppointments": pendingAppointments,
		"totalReviews":        totalReviews,
		"unapprovedReviews":   unapprovedReviews,
		"totalServices":       totalServices,
	})
}
