package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error shape returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-path-keyed messages so the form can
// surface each violation next to its input.
type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details"`
}

// BadRequest responds with 400 and a generic message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// ValidationFailed responds with 400 and per-field messages.
func ValidationFailed(c *gin.Context, details map[string][]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "validation failed",
		Details: details,
	})
}

// TooManyRequests responds with 429 and a generic message.
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}
	c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: message})
}

// InternalError responds with 500 and a generic message. The underlying
// cause is logged by the caller, never sent to the client.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "something went wrong, please try again later"
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
