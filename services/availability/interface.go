package availability

import "context"

// Service exposes remaining-slot counts for bookable dates.
type Service interface {
	// Remaining returns the number of open slots for a date. When forceRefresh
	// is set, or on a cache miss/expiry, the count is re-read from the slot
	// record source.
	Remaining(ctx context.Context, date string, forceRefresh bool) (int, error)
	// Invalidate drops the cached count for a date; used after a successful
	// booking so the next read reflects the new slot total.
	Invalidate(date string)
}
