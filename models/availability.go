package models

// BookedEntry is one confirmed booking inside a per-date slot record.
type BookedEntry struct {
	OrderID    string `bson:"order_id" json:"orderId"`
	SlotNumber int    `bson:"slot_number" json:"slotNumber"`
	Status     string `bson:"status" json:"status"`
}

// SlotRecord is the per-date appointment document read from the document
// store. Booked count derives from its confirmed entries.
type SlotRecord struct {
	Date     string        `bson:"date" json:"date"`
	Bookings []BookedEntry `bson:"bookings" json:"bookings"`
}

// BookedCount returns the number of entries that occupy a slot.
func (r *SlotRecord) BookedCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, b := range r.Bookings {
		if b.Status != "cancelled" {
			count++
		}
	}
	return count
}
