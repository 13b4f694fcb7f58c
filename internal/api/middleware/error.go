package middleware

import (
	"log"
	"net/http"

	"hostel-franchise/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("ErrorHandler: recovered panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		message := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		}
		detail := models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: message,
		}
		if id := c.GetString(RequestIDKey); id != "" {
			detail.Details = map[string]interface{}{"request_id": id}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: detail})
	})
}
