package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/services/calendar"
	"clinicbook/services/mailer"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	resolver, err := booking.NewSlotResolver(
		config.AppConfig.SourceTimezone,
		config.AppConfig.TargetTimezone,
		time.Duration(config.AppConfig.SlotDurationMinutes)*time.Minute,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize slot resolver: %v", err)
	}

	var provisioner calendar.Provisioner
	if config.AppConfig.ProvisionMeeting {
		provisioner, err = calendar.NewGoogleMeetProvisioner(context.Background())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize meeting provisioner: %v", err)
		}
	}

	var confirmationMailer mailer.Mailer
	if config.AppConfig.SendNotification {
		confirmationMailer, err = mailer.NewSMTPMailer()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
		}
	}

	bookingService := &booking.DefaultBookingService{
		Repo:             apptRepo,
		Resolver:         resolver,
		Provisioner:      provisioner,
		Mailer:           confirmationMailer,
		Cache:            booking.NewRedisSlotCache(utils.GetCacheClient()),
		ProvisionMeeting: config.AppConfig.ProvisionMeeting,
		SendNotification: config.AppConfig.SendNotification,
		ClinicName:       config.AppConfig.ClinicName,
		ClinicEmail:      config.AppConfig.ClinicEmail,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookAppointmentHandler: bookingHandler.BookAppointment,
		BookedSlotsHandler:     bookingHandler.BookedSlots,
		HealthHandler:          handlers.Health,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
