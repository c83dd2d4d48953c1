package handlers

import (
	"errors"
	"net/http"

	"arogya/models"
	"arogya/services/booking"
	"arogya/services/clinicapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// failureStatus maps a submission failure code to an HTTP status.
func failureStatus(code string) int {
	switch code {
	case booking.CodeInvalidField, booking.CodePastDate, booking.CodeWindowExceeded,
		booking.CodeSundayClosed, booking.CodeCutoffPassed:
		return http.StatusBadRequest
	case booking.CodeClinicClosed, booking.CodeNoSlots:
		return http.StatusConflict
	case booking.CodeGeoRestricted:
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

// SubmitBooking runs one submission attempt.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	outcome := h.Svc.Submit(c.Request.Context(), req)
	if outcome.State == booking.StateFailed {
		c.JSON(failureStatus(outcome.Failure.Code), gin.H{
			"success": false,
			"state":   outcome.State,
			"phase":   outcome.Phase,
			"code":    outcome.Failure.Code,
			"error":   outcome.Failure.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"state":       outcome.State,
		"redirectUrl": outcome.RedirectURL,
	})
}

// ConfirmPayment is the callback entry point after a completed payment.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}
	if conf.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "orderId is required"})
		return
	}

	receipt, err := h.Svc.Confirm(c.Request.Context(), conf)
	if err != nil {
		h.Logger.Error("failed to record payment confirmation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record confirmation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "receipt": receipt})
}

// GetReceipt serves the stored receipt for a returning browser.
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	orderID := c.Param("orderId")

	receipt, err := h.Svc.ReceiptByOrderID(c.Request.Context(), orderID)
	if errors.Is(err, booking.ErrReceiptNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no receipt found for this order"})
		return
	}
	if err != nil {
		h.Logger.Error("failed to fetch receipt", zap.String("orderId", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "receipt": receipt})
}

// SearchBookings looks up confirmed bookings by phone and date.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
		Date  string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.Search(c.Request.Context(), input.Phone, input.Date)
	if err != nil {
		if apiErr, ok := clinicapi.AsAPIError(err); ok && apiErr.Code == clinicapi.CodeGeoRestricted {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "This service is only available in India."})
			return
		}
		h.Logger.Error("booking search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "search failed, please try again"})
		return
	}

	if result.Multiple {
		c.JSON(http.StatusOK, gin.H{"success": true, "multiple": true, "bookings": result.Bookings})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result.Booking})
}
