package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/services"
)

// respondError writes the uniform failure envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps a core error onto the response envelope. Not
// found and closed-order errors are client-facing and distinguishable;
// everything else is reported as a persistence failure.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", notFoundMessage)
	case errors.Is(err, services.ErrOrderClosed):
		respondError(c, http.StatusBadRequest, "ORDER_CLOSED", "Cannot modify a closed order")
	case errors.Is(err, services.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status value")
	case errors.Is(err, services.ErrInvalidQuantity):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be greater than zero")
	case errors.Is(err, services.ErrInvalidPrice):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unit price must not be negative")
	default:
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Operation failed")
	}
}

// pathID parses a positive integer path parameter. A second return of false
// means the response has already been written.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// queryID parses a positive integer query parameter. A second return of
// false means the response has already been written.
func queryID(c *gin.Context, name, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// queryInt parses an integer query parameter, falling back to a default
func queryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
