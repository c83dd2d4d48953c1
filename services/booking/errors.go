package booking

import "fmt"

// Failure codes for one submission attempt.
const (
	CodeInvalidField   = "invalidField"
	CodePastDate       = "pastDate"
	CodeWindowExceeded = "windowExceeded"
	CodeSundayClosed   = "sundayClosed"
	CodeCutoffPassed   = "cutoffPassed"
	CodeClinicClosed   = "clinicClosed"
	CodeNoSlots        = "noSlots"
	CodeGeoRestricted  = "geoRestricted"
	CodeBackendError   = "backendError"
	CodeNetworkError   = "networkError"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) *BookingError {
	return &BookingError{Code: code, Message: msg}
}
