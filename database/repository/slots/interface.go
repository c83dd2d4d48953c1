package slots

import (
	"context"

	"arogya/models"
)

// SlotRecordRepository reads the per-date appointment record that holds the
// confirmed bookings for a date. It is the authoritative slot-count source.
type SlotRecordRepository interface {
	// GetByDate returns the record for the given date key, or an empty record
	// when no bookings exist yet for that date.
	GetByDate(ctx context.Context, date string) (*models.SlotRecord, error)
}
