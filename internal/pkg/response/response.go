// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "retailcrm-proxy/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Envelope defines the standard success response format.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta"`
}

// ErrorBody defines the standard error response format.
type ErrorBody struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Success sends a successful response with data and meta blocks.
func Success(c *gin.Context, status int, data, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error sends a normalized error response.
func Error(c *gin.Context, e *xerrors.Error) {
	// Abort FIRST before writing response
	c.Abort()

	c.JSON(e.Status, ErrorBody{
		Error:   e.Kind,
		Message: e.Message,
		Details: e.Details,
	})
}
