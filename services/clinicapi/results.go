package clinicapi

import (
	"errors"
	"fmt"

	"arogya/models"
)

// Failure codes reported by the clinic backend.
const (
	CodeGeoRestricted = "GEO_RESTRICTED"
	CodeClinicClosed  = "CLINIC_CLOSED"
	CodeGeneric       = "GENERIC_FAILURE"
)

// APIError is a backend-reported failure, parsed into a tagged value at the
// boundary instead of reading response fields optimistically.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsAPIError unwraps a backend-reported failure from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// OrderRequest is the payload for the backend order-creation call. This is
// the single point where a slot is provisionally reserved server-side.
type OrderRequest struct {
	Date        string `json:"date"`
	PatientName string `json:"name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"`
	Amount      int    `json:"amount"`
}

// OrderResponse carries the payment redirect returned for an accepted order.
type OrderResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// SearchResult is the outcome of a phone+date booking search. Multiple is set
// when the backend found more than one booking for the pair.
type SearchResult struct {
	Multiple bool             `json:"multiple,omitempty"`
	Booking  *models.Booking  `json:"booking,omitempty"`
	Bookings []models.Booking `json:"bookings,omitempty"`
}

// ClosureRequest is the admin payload for a manual clinic closure.
type ClosureRequest struct {
	ClosedFrom string  `json:"closedFrom"`
	ClosedTill *string `json:"closedTill,omitempty"`
}
