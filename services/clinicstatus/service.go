package clinicstatus

import (
	"context"
	"fmt"

	"arogya/services/clinicapi"

	"go.uber.org/zap"
)

// RefreshInterval is how often the background worker re-fetches clinic status.
// Closure changes may lag up to this interval; accepted trade-off.
const RefreshInterval = "@every 5m"

// Refresher pulls the current clinic status from the backend into the gate.
type Refresher struct {
	Backend clinicapi.Client
	Gate    *Gate
	Logger  *zap.Logger
}

// Refresh fetches the latest status and stores it. A stale value is kept on
// fetch failure; the gate then answers from the last known state.
func (r *Refresher) Refresh(ctx context.Context) error {
	status, err := r.Backend.ClinicStatus(ctx)
	if err != nil {
		r.Logger.Error("clinicstatus: refresh failed", zap.Error(err))
		return fmt.Errorf("failed to refresh clinic status: %w", err)
	}

	r.Gate.Set(status)
	r.Logger.Debug("clinicstatus: refreshed",
		zap.Bool("overridden", status.IsManuallyOverridden),
		zap.String("closedFrom", status.ClosedFrom))
	return nil
}
