package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
)

// Services groups everything the HTTP layer calls into
type Services struct {
	Billing      service.BillingService
	Room         service.RoomService
	Notification service.NotificationService
	Parcel       service.ParcelService
	Dashboard    service.DashboardService
	Menu         service.MenuService
}

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	services Services,
	registry *prometheus.Registry,
	jwtSecret string,
	logger *logger.Logger,
) {
	// Initialize handlers
	billingHandler := NewBillingHandler(services.Billing, logger)
	roomHandler := NewRoomHandler(services.Room, logger)
	notificationHandler := NewNotificationHandler(services.Notification, logger)
	parcelHandler := NewParcelHandler(services.Parcel, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)
	menuHandler := NewMenuHandler(services.Menu, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	adminOnly := middleware.RequireRole(inbox.RoleAdmin)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		authed := v1.Group("", middleware.Auth(jwtSecret))

		// Menu routes
		authed.GET("/menus", menuHandler.GetMenus)

		// Billing routes
		billings := authed.Group("/billings")
		{
			billings.GET("/groups", billingHandler.ListGroups)
			billings.GET("/groups/stream", billingHandler.StreamGroups)
			billings.GET("/groups/:id", billingHandler.GetGroup)
			billings.POST("/groups/:id/submit-proof", billingHandler.SubmitGroupProof)
			billings.POST("/submit-proof", billingHandler.SubmitProof)

			billings.POST("/charges", adminOnly, billingHandler.CreateCharge)
			billings.POST("/monthly", adminOnly, billingHandler.CreateMonthlyBill)
			billings.POST("/bulk-monthly", adminOnly, billingHandler.CreateBulkMonthlyRent)
			billings.POST("/groups/:id/verify", adminOnly, billingHandler.VerifyGroup)
			billings.DELETE("/groups/:id", adminOnly, billingHandler.DeleteGroup)
			billings.POST("/delete", adminOnly, billingHandler.DeleteCharges)
			billings.POST("/reminders", adminOnly, billingHandler.SendOverdueReminders)
			billings.GET("/export", adminOnly, billingHandler.ExportGroups)
		}

		// Room routes
		rooms := authed.Group("/rooms", adminOnly)
		{
			rooms.POST("", roomHandler.CreateRoom)
			rooms.GET("", roomHandler.ListRooms)
			rooms.GET("/stream", roomHandler.StreamRooms)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)

			// Lifecycle transitions
			rooms.POST("/:id/register", roomHandler.Register)
			rooms.POST("/:id/vacate", roomHandler.Vacate)
			rooms.POST("/:id/maintenance", roomHandler.StartMaintenance)
			rooms.POST("/:id/maintenance/finish", roomHandler.FinishRepair)
		}

		// Notification routes
		notifications := authed.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/stream", notificationHandler.StreamNotifications)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// Parcel routes
		parcels := authed.Group("/parcels")
		{
			parcels.GET("", parcelHandler.ListParcels)
			parcels.POST("", adminOnly, parcelHandler.LogArrival)
			parcels.POST("/:id/pickup", adminOnly, parcelHandler.MarkPickedUp)
			parcels.DELETE("/:id", adminOnly, parcelHandler.DeleteParcel)
		}

		// Dashboard routes
		dashboard := authed.Group("/dashboard", adminOnly)
		{
			dashboard.GET("/statistics", dashboardHandler.GetDashboardStatistics)
			dashboard.GET("/stream", dashboardHandler.StreamDashboard)
		}
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Apartment Backend Service",
	})
}
