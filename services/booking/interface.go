package booking

import (
	"context"

	"arogya/models"
	"arogya/services/clinicapi"
)

// BookingService drives the booking workflow: submission attempts, the
// post-payment confirmation path, receipt lookup and booking search.
type BookingService interface {
	// Submit runs one submission attempt through the state machine and
	// returns its terminal outcome. At most one order-creation request is
	// issued per call; there is no automatic retry.
	Submit(ctx context.Context, req models.BookingRequest) Outcome

	// Confirm records a completed payment: stores the receipt and
	// invalidates the availability cache for the booked date.
	Confirm(ctx context.Context, conf models.PaymentConfirmation) (*models.Receipt, error)

	// ReceiptByOrderID fetches a stored receipt for the returning browser.
	ReceiptByOrderID(ctx context.Context, orderID string) (*models.Receipt, error)

	// Search looks up confirmed bookings by phone and date.
	Search(ctx context.Context, phone, date string) (*clinicapi.SearchResult, error)
}
