// controllers/availability.go
package controllers

import (
	"net/http"
	"repairpro-backend/config"
	"repairpro-backend/services"

	"github.com/gin-gonic/gin"
)

// GetAvailability returns the open slots for a date. The response echoes the
// requested date so a client that changed dates mid-flight can discard a
// reply that no longer matches its selection.
func GetAvailability(c *gin.Context) {
	date := c.Query("date")

	slots := services.AvailableSlotsForDate(config.DB, date)

	c.JSON(http.StatusOK, gin.H{
		"date":            date,
		"available_slots": slots,
	})
}
