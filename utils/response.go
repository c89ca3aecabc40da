package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a JSON error body with the given status code.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithFieldError sends a 400 naming the form field at fault so the
// client can attach the message to the right input.
func RespondWithFieldError(c *gin.Context, field, message string) {
	c.JSON(400, gin.H{"error": message, "field": field})
}
