package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"apt-be-svc/docs"
	"apt-be-svc/internal/config"
	"apt-be-svc/internal/dashboard"
	"apt-be-svc/internal/database"
	"apt-be-svc/internal/handler"
	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/scheduler"
	"apt-be-svc/internal/service"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/logger"
)

// @title Apartment Backend Service API
// @version 1.0
// @description Rooms, itemized monthly bills, payment review, parcels and notifications for a small apartment building
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Apartment Backend Service API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Apartment Backend Service...")

	// Amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	location, err := time.LoadLocation(cfg.Billing.Timezone)
	if err != nil {
		appLogger.WithError(err).WithField("timezone", cfg.Billing.Timezone).Fatal("Invalid billing timezone")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Metrics
	collector := metrics.NewMetricsCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Change propagation
	wallClock := clock.WallClock
	hub := stream.NewHub(collector, appLogger)
	var notifier stream.Notifier = hub
	if cfg.Stream.Driver == "postgres" {
		notifier = stream.NewPGNotifier(db.DB, cfg.Stream.Channel, hub, appLogger)
		listener := stream.NewPGListener(cfg.Database.GetURL(), cfg.Stream.Channel, hub, wallClock, appLogger)
		go listener.Run(ctx)
		appLogger.WithField("channel", cfg.Stream.Channel).Info("Listening for store changes")
	}

	// Initialize repositories
	chargeRepo := repository.NewChargeRepository(db.DB, notifier)
	roomRepo := repository.NewRoomRepository(db.DB, notifier)
	notificationRepo := repository.NewNotificationRepository(db.DB, notifier)
	parcelRepo := repository.NewParcelRepository(db.DB, notifier)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db.DB)

	// Dashboard reconciler
	reconciler := dashboard.NewReconciler(hub,
		func(ctx context.Context) ([]models.Room, error) { return roomRepo.List(ctx, "") },
		func(ctx context.Context) ([]models.Charge, error) {
			return chargeRepo.List(ctx, repository.ChargeFilter{})
		},
		wallClock, location, cfg.Billing.IncomeWindowMonths, collector, appLogger)
	go reconciler.Run(ctx)

	// Initialize services
	billingService := service.NewBillingService(chargeRepo, roomRepo, notificationRepo, hub, wallClock, service.BillingSettings{
		Location:     location,
		RentDueDay:   cfg.Scheduler.RentDueDay,
		WriteWorkers: cfg.Billing.WriteWorkers,
	}, collector, appLogger)
	roomService := service.NewRoomService(roomRepo, notificationRepo, hub, wallClock, collector, appLogger)
	notificationService := service.NewNotificationService(notificationRepo, hub, appLogger)
	parcelService := service.NewParcelService(parcelRepo, roomRepo, notificationRepo, wallClock, collector, appLogger)
	dashboardService := service.NewDashboardService(reconciler, roomRepo, chargeRepo, wallClock, location, cfg.Billing.IncomeWindowMonths, appLogger)
	menuService := service.NewMenuService()

	// Initialize scheduler
	billingScheduler := scheduler.NewBillingScheduler(billingService, logSchedulerRepo, wallClock, location,
		cfg.Scheduler.BillingCronExpression, cfg.Scheduler.ReminderCronExpression, collector, appLogger)
	if err := billingScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start billing scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger, collector))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	// Setup routes
	handler.SetupRoutes(router, handler.Services{
		Billing:      billingService,
		Room:         roomService,
		Notification: notificationService,
		Parcel:       parcelService,
		Dashboard:    dashboardService,
		Menu:         menuService,
	}, registry, cfg.JWT.Secret, appLogger)

	// Create HTTP server. Request contexts derive from ctx so open event
	// streams end on shutdown.
	server := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	stop()
	billingScheduler.Stop()

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithField("error", err).Error("Server forced to shutdown")
	}

	// Wait for queued charge writes
	billingService.Close()

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
