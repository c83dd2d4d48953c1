// File: arogya/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogya/config"
	"arogya/cron"
	"arogya/database"
	slotsRepo "arogya/database/repository/slots"
	"arogya/handlers"
	"arogya/middleware"
	"arogya/routes"
	"arogya/services/availability"
	"arogya/services/booking"
	"arogya/services/clinicapi"
	"arogya/services/clinicstatus"
	"arogya/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitReceiptCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Backend client.
	backendTimeout := time.Duration(config.AppConfig.BackendTimeout) * time.Second
	backend := clinicapi.NewHTTPClient(config.AppConfig.BackendBaseURL, backendTimeout, logger)

	// Clinic status gate: seed once at startup, then refresh periodically.
	gate := clinicstatus.NewGate()
	refresher := &clinicstatus.Refresher{
		Backend: backend,
		Gate:    gate,
		Logger:  logger,
	}
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := refresher.Refresh(startupCtx); err != nil {
		logger.Sugar().Warnf("main: initial clinic status fetch failed, gate starts open: %v", err)
	}
	cancelStartup()
	cron.InitStatusWorker(refresher)

	// Availability service over the per-date slot records.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Repo:     slotsRepo.NewMongoSlotRecordRepo(),
		Cache:    availability.NewCache(availability.CacheTTL, nil),
		Capacity: config.AppConfig.DailySlotCapacity,
		Logger:   logger,
	}

	// Booking orchestrator.
	validator := booking.NewValidator(
		config.AppConfig.AdvanceBookingDays,
		config.AppConfig.SameDayCutoffHour,
	)
	bookingSvc := &booking.DefaultBookingService{
		Availability: availabilitySvc,
		Gate:         gate,
		Backend:      backend,
		Receipts:     &booking.RedisReceiptStore{Client: utils.GetReceiptCacheClient()},
		Validator:    validator,
		Fee:          config.AppConfig.ConsultationFee,
		Logger:       logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc, validator, logger)
	statusHandler := handlers.NewStatusHandler(gate)
	adminHandler := handlers.NewAdminHandler(backend, refresher, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SubmitBooking:  bookingHandler.SubmitBooking,
		ConfirmPayment: bookingHandler.ConfirmPayment,
		GetReceipt:     bookingHandler.GetReceipt,
		SearchBookings: bookingHandler.SearchBookings,

		GetSlots:        availabilityHandler.GetSlots,
		GetClinicStatus: statusHandler.GetClinicStatus,

		AdminHandler: adminHandler,

		PaymentHook: handlers.NewProxyHandler("payment", config.AppConfig.PaymentHookURL, logger),
		NotifyHook:  handlers.NewProxyHandler("notify", config.AppConfig.NotifyHookURL, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetReceiptCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
