package handlers

import (
	"net/http"
	"time"

	"arogya/services/availability"
	"arogya/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves remaining-slot counts for the date picker.
type AvailabilityHandler struct {
	Svc       availability.Service
	Validator booking.Validator
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewAvailabilityHandler(svc availability.Service, validator booking.Validator, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Validator: validator, Logger: logger, Now: time.Now}
}

// GetSlots returns the remaining slots for a date. Ineligible dates are
// rejected up front so the picker can show the policy reason directly.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date := c.Param("date")

	if err := h.Validator.ValidateDate(date, h.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"code":    err.Code,
			"error":   err.Message,
		})
		return
	}

	force := c.Query("forceRefresh") == "true"
	remaining, err := h.Svc.Remaining(c.Request.Context(), date, force)
	if err != nil {
		h.Logger.Error("failed to fetch slot availability",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "could not fetch slot availability, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"date":           date,
		"remainingSlots": remaining,
	})
}
