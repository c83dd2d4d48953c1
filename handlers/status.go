package handlers

import (
	"net/http"
	"time"

	"arogya/services/clinicstatus"
	"arogya/utils"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the public clinic status and the health snapshot.
type StatusHandler struct {
	Gate *clinicstatus.Gate
}

func NewStatusHandler(gate *clinicstatus.Gate) *StatusHandler {
	return &StatusHandler{Gate: gate}
}

// GetClinicStatus returns the last fetched closure state plus whether the
// clinic is closed right now.
func (h *StatusHandler) GetClinicStatus(c *gin.Context) {
	status := h.Gate.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    status,
		"closedNow": h.Gate.IsClosedNow(time.Now()),
	})
}

// HealthHandler reports service and dependency health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
