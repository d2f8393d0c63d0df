package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skyplanner/config"
	"skyplanner/handlers"
	"skyplanner/services"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	// Wire the external collaborators; missing credentials switch each
	// into its documented fallback mode.
	services.InitFlights(cfg)
	services.InitComposer(cfg)
	services.InitMailer(cfg)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURLs != "" {
		for _, u := range strings.Split(cfg.FrontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/search", handlers.SearchHandler)
		api.POST("/itinerary", handlers.ItineraryHandler)
		api.POST("/itinerary/pdf", handlers.PDFHandler)
		api.POST("/carbon", handlers.CarbonHandler)
		api.POST("/email", handlers.EmailHandler)
	}

	log.Printf("🚀 SkyPlanner backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
