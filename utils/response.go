package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONOutcome is the flash-message replacement: an explicit outcome/message
// pair plus the view the client should navigate to next.
func JSONOutcome(c *gin.Context, code int, status, message, redirect string) {
	c.JSON(code, gin.H{"status": status, "message": message, "redirect": redirect})
}
