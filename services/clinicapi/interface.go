package clinicapi

import (
	"context"

	"arogya/models"
)

// Client talks to the external clinic backend. Backend-reported failures
// surface as *APIError; transport and decoding problems as plain errors.
type Client interface {
	ClinicStatus(ctx context.Context) (*models.ClinicStatus, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
	SearchBookings(ctx context.Context, phone, date string) (*SearchResult, error)

	// Admin operations carry the caller's bearer token through to the backend.
	AdminClinicStatus(ctx context.Context, token string) (*models.ClinicStatus, error)
	AdminSetClosure(ctx context.Context, token string, req ClosureRequest) error
	AdminReopen(ctx context.Context, token string) error
	AdminBookings(ctx context.Context, token, date string) ([]models.Booking, error)
}
