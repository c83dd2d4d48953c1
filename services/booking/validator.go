package booking

import (
	"fmt"
	"regexp"
	"time"

	"arogya/models"
)

const dateLayout = "2006-01-02"

// Default booking-policy values; overridable via config.
const (
	DefaultAdvanceBookingDays = 10
	DefaultSameDayCutoffHour  = 19
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z .]{1,49}$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// Validator enforces the booking-window and clinic-hours rules. Pure and
// deterministic given now; no I/O.
type Validator struct {
	AdvanceDays int // furthest bookable day, inclusive
	CutoffHour  int // same-day bookings stop at this hour
}

func NewValidator(advanceDays, cutoffHour int) Validator {
	if advanceDays <= 0 {
		advanceDays = DefaultAdvanceBookingDays
	}
	if cutoffHour <= 0 {
		cutoffHour = DefaultSameDayCutoffHour
	}
	return Validator{AdvanceDays: advanceDays, CutoffHour: cutoffHour}
}

// ValidateDate applies the eligibility rules in order; first failure wins.
func (v Validator) ValidateDate(date string, now time.Time) *BookingError {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return NewBookingError(CodeInvalidField, "date must be in YYYY-MM-DD format")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return NewBookingError(CodePastDate, "cannot book an appointment for a past date")
	}
	if day.After(today.AddDate(0, 0, v.AdvanceDays)) {
		return NewBookingError(CodeWindowExceeded,
			fmt.Sprintf("appointments open up to %d days in advance", v.AdvanceDays))
	}
	if day.Weekday() == time.Sunday {
		return NewBookingError(CodeSundayClosed, "the clinic is closed on Sundays")
	}
	if day.Equal(today) && now.Hour() >= v.CutoffHour {
		return NewBookingError(CodeCutoffPassed, "same-day bookings close at 7 PM")
	}
	return nil
}

// ValidateRequest checks the form fields of a booking request.
func ValidateRequest(req models.BookingRequest) *BookingError {
	if !namePattern.MatchString(req.PatientName) {
		return NewBookingError(CodeInvalidField, "enter a valid patient name")
	}
	switch req.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOthers:
	default:
		return NewBookingError(CodeInvalidField, "gender must be male, female or others")
	}
	if req.Age < 1 || req.Age > 120 {
		return NewBookingError(CodeInvalidField, "age must be between 1 and 120")
	}
	if !phonePattern.MatchString(req.Phone) {
		return NewBookingError(CodeInvalidField, "enter a valid 10-digit mobile number")
	}
	return nil
}
