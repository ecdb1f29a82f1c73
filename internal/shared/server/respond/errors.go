package respond

import (
	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/shared/telemetry"
)

// ErrorResponse is the standardized error body: a human-readable detail
// plus an optional machine-readable code and per-field breakdown.
type ErrorResponse struct {
	Detail    string      `json:"detail"`
	ErrorCode string      `json:"error_code,omitempty"`
	Fields    interface{} `json:"fields,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, detail string, fields interface{}) {
	logFields := map[string]any{
		"status":     status,
		"error_code": code,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", logFields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Detail:    detail,
		ErrorCode: code,
		Fields:    fields,
	})
}
