package models

// ClinicStatus is the admin-controlled closure state fetched from the backend.
// When IsManuallyOverridden is set, ClosedFrom is always present; a nil
// ClosedTill means the clinic is closed indefinitely until an admin reopens it.
type ClinicStatus struct {
	IsManuallyOverridden bool    `json:"isManuallyOverridden"`
	ClosedFrom           string  `json:"closedFrom,omitempty"` // "2006-01-02"
	ClosedTill           *string `json:"closedTill,omitempty"`
	DisplayMessage       string  `json:"displayMessage,omitempty"`
}
