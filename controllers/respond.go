package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hotelease-backend/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service error kinds to HTTP statuses: NotFound to
// 404, every other known kind to 400, anything else to 500. The wrapped
// message is surfaced so the client sees the violated invariant.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}

// parseDate accepts a plain date or an RFC3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: %s", raw)
}
