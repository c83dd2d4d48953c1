package routes

import (
	"arogya/handlers"
	"arogya/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public booking-workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/clinic/status", hb.GetClinicStatus)
		api.GET("/slots/:date", hb.GetSlots)
		api.POST("/bookings", hb.SubmitBooking)
		api.POST("/bookings/search", hb.SearchBookings)
		api.POST("/payments/confirm", hb.ConfirmPayment)
		api.GET("/receipts/:orderId", hb.GetReceipt)
	}
}

// RegisterAdminRoutes registers the protected clinic-control endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/clinic/status", hb.AdminHandler.GetClinicStatusHandler)
		api.POST("/clinic/close", hb.AdminHandler.SetClosureHandler)
		api.POST("/clinic/reopen", hb.AdminHandler.ReopenHandler)
		api.GET("/bookings/:date", hb.AdminHandler.ListBookingsHandler)
	}
}

// RegisterHookRoutes registers the webhook pass-through proxies.
func RegisterHookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	hooks := r.Group("/api/hooks")
	{
		hooks.GET("/payment", hb.PaymentHook.HealthHandler)
		hooks.POST("/payment", hb.PaymentHook.ForwardHandler)
		hooks.GET("/notify", hb.NotifyHook.HealthHandler)
		hooks.POST("/notify", hb.NotifyHook.ForwardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHookRoutes(r, hb)
}
