package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
