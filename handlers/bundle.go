package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	// Booking workflow endpoints.
	SubmitBooking  gin.HandlerFunc
	ConfirmPayment gin.HandlerFunc
	GetReceipt     gin.HandlerFunc
	SearchBookings gin.HandlerFunc

	// Availability and clinic status.
	GetSlots        gin.HandlerFunc
	GetClinicStatus gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler

	// Webhook proxies.
	PaymentHook *ProxyHandler
	NotifyHook  *ProxyHandler
}
