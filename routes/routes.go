package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/openlearnhq/education-platform-backend/config"
	"github.com/openlearnhq/education-platform-backend/database"
	"github.com/openlearnhq/education-platform-backend/internal/ambassador"
	"github.com/openlearnhq/education-platform-backend/internal/checkout"
	"github.com/openlearnhq/education-platform-backend/internal/event"
	"github.com/openlearnhq/education-platform-backend/internal/notification"
	"github.com/openlearnhq/education-platform-backend/internal/partnership"
	"github.com/openlearnhq/education-platform-backend/internal/registration"
	"github.com/openlearnhq/education-platform-backend/middleware"
)

// SetupRoutes wires every module's repository, service, and handler and
// mounts the HTTP surface under /api/v1.
func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg)) // Global rate limit: 100 req/min per IP
	api.Use(middleware.RequestLog())

	// ========== Notifications ==========
	notifRepo := notification.NewRepository(database.DB)
	sender := notification.NewEmailSender(cfg)
	producer := notification.NewProducer(cfg)
	notifSvc := notification.NewService(notifRepo, sender, producer, cfg)
	notifHandler := notification.NewHandler(notifRepo)
	notification.StartKafkaConsumer(notifSvc, cfg)

	api.GET("/notifications/logs", notifHandler.ListLogs)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	eventRoutes := api.Group("/events")
	{
		eventRoutes.POST("", eventHandler.CreateEvent)
		eventRoutes.GET("", eventHandler.ListEvents)
		eventRoutes.GET("/:id", eventHandler.GetEvent)
		eventRoutes.PUT("/:id", eventHandler.UpdateEvent)
		eventRoutes.DELETE("/:id", eventHandler.DeleteEvent)
		eventRoutes.DELETE("", eventHandler.BulkDeleteEvents)
		eventRoutes.POST("/:id/duplicate", eventHandler.DuplicateEvent)
	}

	// ========== Registration ==========
	regSvc := registration.NewService(eventRepo, notifSvc)
	regHandler := registration.NewHandler(regSvc)
	{
		eventRoutes.POST("/:id/register", regHandler.Register)
		eventRoutes.GET("/:id/check-registration/:email", regHandler.CheckRegistration)
		eventRoutes.POST("/:id/attendees", regHandler.AddAttendee)
		eventRoutes.DELETE("/:id/attendees/:attendeeId", regHandler.RemoveAttendee)
	}
	api.GET("/export/:id", regHandler.ExportAttendees)

	// ========== Checkout ==========
	checkoutRepo := checkout.NewRepository(database.DB)
	checkoutSvc := checkout.NewService(checkoutRepo, eventRepo, regSvc, cfg)
	checkoutHandler := checkout.NewHandler(checkoutSvc, checkoutRepo)

	checkoutRoutes := api.Group("/checkout")
	{
		checkoutRoutes.POST("", checkoutHandler.StartCheckout)
		checkoutRoutes.POST("/verify", checkoutHandler.VerifyPayment)
		checkoutRoutes.GET("/events/:id", checkoutHandler.ListByEvent)
	}

	// ========== Partnerships ==========
	partnershipRepo := partnership.NewRepository(database.DB)
	partnershipSvc := partnership.NewService(partnershipRepo, notifSvc)
	partnershipHandler := partnership.NewHandler(partnershipSvc)

	partnershipRoutes := api.Group("/partnerships")
	{
		partnershipRoutes.POST("", partnershipHandler.CreateInquiry)
		partnershipRoutes.GET("", partnershipHandler.ListInquiries)
		partnershipRoutes.GET("/:id", partnershipHandler.GetInquiry)
		partnershipRoutes.DELETE("/:id", partnershipHandler.DeleteInquiry)
		partnershipRoutes.PATCH("/:id/status", partnershipHandler.UpdateInquiryStatus)
	}

	// ========== Ambassadors ==========
	ambassadorRepo := ambassador.NewRepository(database.DB)
	ambassadorSvc := ambassador.NewService(ambassadorRepo, notifSvc)
	ambassadorHandler := ambassador.NewHandler(ambassadorSvc)

	ambassadorRoutes := api.Group("/ambassadors")
	{
		ambassadorRoutes.POST("", ambassadorHandler.Apply)
		ambassadorRoutes.GET("", ambassadorHandler.ListApplications)
		ambassadorRoutes.GET("/:id", ambassadorHandler.GetApplication)
		ambassadorRoutes.DELETE("/:id", ambassadorHandler.DeleteApplication)
		ambassadorRoutes.PATCH("/:id/status", ambassadorHandler.Review)
	}
}
