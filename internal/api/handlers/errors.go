package handlers

import (
	"errors"
	"log"
	"net/http"

	"hireflow/internal/services"
	"hireflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// respondError writes the standard error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(status, message, c.Request.URL.Path))
}

// respondValidationError writes the envelope with the per-field error map.
func respondValidationError(c *gin.Context, fields map[string]string) {
	resp := dto.NewErrorResponse(http.StatusBadRequest, "Validation Failed", c.Request.URL.Path)
	resp.Fields = fields
	c.JSON(http.StatusBadRequest, resp)
}

// respondServiceError translates service-layer sentinel errors into HTTP
// responses. Unexpected errors are logged in full server-side and
// surfaced only as a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrInvalidState):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
