package handlers

import (
	"net/http"
	"time"

	"arogya/services/clinicapi"
	"arogya/services/clinicstatus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler forwards elevated clinic-control operations to the backend.
// Mutations trigger an immediate gate refresh so the local closure state does
// not wait out the polling interval.
type AdminHandler struct {
	Backend   clinicapi.Client
	Refresher *clinicstatus.Refresher
	Logger    *zap.Logger
}

func NewAdminHandler(backend clinicapi.Client, refresher *clinicstatus.Refresher, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Backend: backend, Refresher: refresher, Logger: logger}
}

func adminToken(c *gin.Context) string {
	return c.GetString("adminToken")
}

func (ah *AdminHandler) respondBackendError(c *gin.Context, err error) {
	if apiErr, ok := clinicapi.AsAPIError(err); ok {
		status := http.StatusBadGateway
		if apiErr.Code == clinicapi.CodeGeoRestricted {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"success": false, "code": apiErr.Code, "error": apiErr.Message})
		return
	}
	ah.Logger.Error("admin backend call failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "backend request failed"})
}

// GetClinicStatusHandler returns the backend-authoritative status.
func (ah *AdminHandler) GetClinicStatusHandler(c *gin.Context) {
	status, err := ah.Backend.AdminClinicStatus(c.Request.Context(), adminToken(c))
	if err != nil {
		ah.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// SetClosureHandler applies a manual closure window.
func (ah *AdminHandler) SetClosureHandler(c *gin.Context) {
	var req clinicapi.ClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", req.ClosedFrom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "closedFrom must be a valid YYYY-MM-DD date"})
		return
	}
	if req.ClosedTill != nil {
		if _, err := time.Parse("2006-01-02", *req.ClosedTill); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "closedTill must be a valid YYYY-MM-DD date"})
			return
		}
		if *req.ClosedTill < req.ClosedFrom {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "closedTill cannot be before closedFrom"})
			return
		}
	}

	if err := ah.Backend.AdminSetClosure(c.Request.Context(), adminToken(c), req); err != nil {
		ah.respondBackendError(c, err)
		return
	}

	ah.refreshGate(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReopenHandler lifts the manual closure starting today.
func (ah *AdminHandler) ReopenHandler(c *gin.Context) {
	if err := ah.Backend.AdminReopen(c.Request.Context(), adminToken(c)); err != nil {
		ah.respondBackendError(c, err)
		return
	}

	ah.refreshGate(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListBookingsHandler returns the confirmed bookings for a date.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	date := c.Param("date")
	bookings, err := ah.Backend.AdminBookings(c.Request.Context(), adminToken(c), date)
	if err != nil {
		ah.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (ah *AdminHandler) refreshGate(c *gin.Context) {
	if err := ah.Refresher.Refresh(c.Request.Context()); err != nil {
		// The periodic worker will converge; the mutation itself succeeded.
		ah.Logger.Warn("post-mutation status refresh failed", zap.Error(err))
	}
}
