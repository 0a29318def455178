// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the canonical error response shape. Every error response with
// a body carries exactly one "error" field.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and aborts the chain.
func Error(c *gin.Context, code int, message string) {
	c.Abort()
	c.JSON(code, ErrorBody{Error: message})
}

// BadRequest sends a 400 response for malformed or invalid input.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// Internal sends a 500 response with a generic message. Details stay in the
// server logs, never in the body.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
