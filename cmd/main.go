package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openlearnhq/education-platform-backend/config"
	"github.com/openlearnhq/education-platform-backend/database"
	"github.com/openlearnhq/education-platform-backend/internal/ambassador"
	"github.com/openlearnhq/education-platform-backend/internal/checkout"
	"github.com/openlearnhq/education-platform-backend/internal/event"
	"github.com/openlearnhq/education-platform-backend/internal/notification"
	"github.com/openlearnhq/education-platform-backend/internal/partnership"
	"github.com/openlearnhq/education-platform-backend/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&event.Event{},
		&checkout.Checkout{},
		&partnership.Inquiry{},
		&ambassador.Application{},
		&notification.NotificationLog{},
	); err != nil {
		panic(fmt.Sprintf("DB AutoMigrate failed: %v", err))
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(router, cfg)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
