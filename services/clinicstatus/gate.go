package clinicstatus

import (
	"sync"
	"time"

	"arogya/models"
)

// Gate holds the backend-authoritative clinic closure state. The background
// refresher and admin-triggered refreshes both write here; last write wins
// since every writer reads from the same backend value.
type Gate struct {
	mu        sync.RWMutex
	status    *models.ClinicStatus
	fetchedAt time.Time
}

func NewGate() *Gate {
	return &Gate{}
}

// Set replaces the held status with a freshly fetched value.
func (g *Gate) Set(status *models.ClinicStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
	g.fetchedAt = time.Now()
}

// Snapshot returns the current status; nil when nothing has been fetched yet.
func (g *Gate) Snapshot() *models.ClinicStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// IsClosedNow reports whether the manual override closes the clinic today.
func (g *Gate) IsClosedNow(now time.Time) bool {
	return IsClosed(g.Snapshot(), now)
}

// IsClosed reports whether status closes the clinic on the day of now.
// An absent ClosedTill means closed indefinitely until an admin reopens.
func IsClosed(status *models.ClinicStatus, now time.Time) bool {
	if status == nil || !status.IsManuallyOverridden {
		return false
	}

	today := now.Format("2006-01-02")
	if status.ClosedFrom == "" || today < status.ClosedFrom {
		return false
	}
	if status.ClosedTill == nil {
		return true
	}
	return today <= *status.ClosedTill
}
