package models

import "time"

// Gender values accepted on a booking request.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

// BookingRequest carries one submission attempt from the booking form.
// A new request is constructed per attempt; it is never mutated after submit.
type BookingRequest struct {
	Date        string `json:"date"` // "2006-01-02"
	PatientName string `json:"name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"` // 10-digit Indian mobile, starts 6-9
}

// Booking is a confirmed booking record as returned by the clinic backend.
type Booking struct {
	OrderID     string    `bson:"order_id" json:"orderId"`
	PaymentID   string    `bson:"payment_id" json:"paymentId,omitempty"`
	SlotNumber  int       `bson:"slot_number" json:"slotNumber"`
	Date        string    `bson:"date" json:"date"`
	PatientName string    `bson:"name" json:"name"`
	Gender      string    `bson:"gender" json:"gender"`
	Age         int       `bson:"age" json:"age"`
	Phone       string    `bson:"phone" json:"phone"`
	Amount      int       `bson:"amount" json:"amount"`
	Status      string    `bson:"status" json:"status"` // e.g. "confirmed", "pending"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// PaymentConfirmation is the payload delivered by the payment callback
// once the gateway reports a completed payment for an order.
type PaymentConfirmation struct {
	OrderID     string `json:"orderId"`
	PaymentID   string `json:"paymentId"`
	SlotNumber  int    `json:"slotNumber"`
	Date        string `json:"date"`
	PatientName string `json:"name"`
	Amount      int    `json:"amount"`
}

// Receipt is what the returning browser is shown after a completed payment.
// It is reconstructed from the confirmation callback, never from the
// pre-redirect submission state.
type Receipt struct {
	ReceiptID   string    `json:"receiptId"`
	OrderID     string    `json:"orderId"`
	PaymentID   string    `json:"paymentId"`
	SlotNumber  int       `json:"slotNumber"`
	Date        string    `json:"date"`
	PatientName string    `json:"name"`
	Amount      int       `json:"amount"`
	IssuedAt    time.Time `json:"issuedAt"`
}
