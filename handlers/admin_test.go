package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arogya/models"
	"arogya/services/clinicapi"
	"arogya/services/clinicstatus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubAdminBackend struct {
	status        *models.ClinicStatus
	statusCalls   int
	closureReq    *clinicapi.ClosureRequest
	closureErr    error
	reopenCalls   int
	bookings      []models.Booking
	adminStatuses int
}

func (s *stubAdminBackend) ClinicStatus(ctx context.Context) (*models.ClinicStatus, error) {
	s.statusCalls++
	if s.status == nil {
		return &models.ClinicStatus{}, nil
	}
	return s.status, nil
}

func (s *stubAdminBackend) CreateOrder(ctx context.Context, req clinicapi.OrderRequest) (*clinicapi.OrderResponse, error) {
	return nil, nil
}

func (s *stubAdminBackend) SearchBookings(ctx context.Context, phone, date string) (*clinicapi.SearchResult, error) {
	return nil, nil
}

func (s *stubAdminBackend) AdminClinicStatus(ctx context.Context, token string) (*models.ClinicStatus, error) {
	s.adminStatuses++
	return s.status, nil
}

func (s *stubAdminBackend) AdminSetClosure(ctx context.Context, token string, req clinicapi.ClosureRequest) error {
	if s.closureErr != nil {
		return s.closureErr
	}
	s.closureReq = &req
	return nil
}

func (s *stubAdminBackend) AdminReopen(ctx context.Context, token string) error {
	s.reopenCalls++
	return nil
}

func (s *stubAdminBackend) AdminBookings(ctx context.Context, token, date string) ([]models.Booking, error) {
	return s.bookings, nil
}

func adminFixture(backend *stubAdminBackend) (*gin.Engine, *clinicstatus.Gate) {
	gin.SetMode(gin.TestMode)
	gate := clinicstatus.NewGate()
	refresher := &clinicstatus.Refresher{Backend: backend, Gate: gate, Logger: zap.NewNop()}
	h := NewAdminHandler(backend, refresher, zap.NewNop())
	r := gin.New()
	r.GET("/api/admin/clinic/status", h.GetClinicStatusHandler)
	r.POST("/api/admin/clinic/close", h.SetClosureHandler)
	r.POST("/api/admin/clinic/reopen", h.ReopenHandler)
	r.GET("/api/admin/bookings/:date", h.ListBookingsHandler)
	return r, gate
}

func TestSetClosureRejectsTillBeforeFrom(t *testing.T) {
	backend := &stubAdminBackend{}
	r, _ := adminFixture(backend)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/close",
		strings.NewReader(`{"closedFrom":"2025-06-10","closedTill":"2025-06-08"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.closureReq != nil {
		t.Fatal("invalid window must not reach the backend")
	}
}

func TestSetClosureRejectsMalformedDates(t *testing.T) {
	backend := &stubAdminBackend{}
	r, _ := adminFixture(backend)

	for _, body := range []string{
		`{"closedFrom":"10-06-2025"}`,
		`{"closedFrom":"2025-06-10","closedTill":"next week"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/close", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
	if backend.closureReq != nil {
		t.Fatal("malformed dates must not reach the backend")
	}
}

func TestSetClosureRefreshesGateImmediately(t *testing.T) {
	backend := &stubAdminBackend{status: &models.ClinicStatus{
		IsManuallyOverridden: true,
		ClosedFrom:           "2025-06-10",
		DisplayMessage:       "Closed for maintenance",
	}}
	r, gate := adminFixture(backend)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/close",
		strings.NewReader(`{"closedFrom":"2025-06-10","closedTill":"2025-06-12"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.closureReq == nil || backend.closureReq.ClosedFrom != "2025-06-10" {
		t.Fatalf("expected closure forwarded to backend, got %+v", backend.closureReq)
	}
	if backend.statusCalls != 1 {
		t.Fatalf("expected one immediate refresh, got %d", backend.statusCalls)
	}
	snap := gate.Snapshot()
	if snap == nil || !snap.IsManuallyOverridden {
		t.Fatalf("expected gate updated from refresh, got %+v", snap)
	}
}

func TestSetClosureAcceptsEqualFromAndTill(t *testing.T) {
	backend := &stubAdminBackend{}
	r, _ := adminFixture(backend)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/close",
		strings.NewReader(`{"closedFrom":"2025-06-10","closedTill":"2025-06-10"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("single-day closure should pass, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReopenRefreshesGate(t *testing.T) {
	backend := &stubAdminBackend{status: &models.ClinicStatus{}}
	r, gate := adminFixture(backend)
	gate.Set(&models.ClinicStatus{IsManuallyOverridden: true, ClosedFrom: "2025-06-01"})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/reopen", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.reopenCalls != 1 {
		t.Fatalf("expected one reopen call, got %d", backend.reopenCalls)
	}
	if snap := gate.Snapshot(); snap.IsManuallyOverridden {
		t.Fatalf("expected gate cleared after reopen refresh, got %+v", snap)
	}
}

func TestSetClosureGeoRestrictedMapsToForbidden(t *testing.T) {
	backend := &stubAdminBackend{
		closureErr: &clinicapi.APIError{Code: clinicapi.CodeGeoRestricted, Message: "blocked"},
	}
	r, _ := adminFixture(backend)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clinic/close",
		strings.NewReader(`{"closedFrom":"2025-06-10"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.statusCalls != 0 {
		t.Fatal("failed mutation must not trigger a refresh")
	}
}
