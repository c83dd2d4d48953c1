package clinicstatus

import (
	"context"
	"errors"
	"testing"

	"arogya/models"
	"arogya/services/clinicapi"

	"go.uber.org/zap"
)

type stubBackend struct {
	clinicapi.Client
	status *models.ClinicStatus
	err    error
}

func (s *stubBackend) ClinicStatus(ctx context.Context) (*models.ClinicStatus, error) {
	return s.status, s.err
}

func TestRefreshStoresStatus(t *testing.T) {
	gate := NewGate()
	refresher := &Refresher{
		Backend: &stubBackend{status: &models.ClinicStatus{
			IsManuallyOverridden: true,
			ClosedFrom:           "2025-01-01",
		}},
		Gate:   gate,
		Logger: zap.NewNop(),
	}

	if err := refresher.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gate.IsClosedNow(at("2025-01-15")) {
		t.Fatalf("refreshed closure not visible through the gate")
	}
}

func TestRefreshKeepsLastKnownStatusOnFailure(t *testing.T) {
	gate := NewGate()
	gate.Set(&models.ClinicStatus{IsManuallyOverridden: true, ClosedFrom: "2025-01-01"})

	refresher := &Refresher{
		Backend: &stubBackend{err: errors.New("backend down")},
		Gate:    gate,
		Logger:  zap.NewNop(),
	}

	if err := refresher.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh failure to propagate")
	}
	if !gate.IsClosedNow(at("2025-01-15")) {
		t.Fatalf("failed refresh must not clear the last known status")
	}
}
