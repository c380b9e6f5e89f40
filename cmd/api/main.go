package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/reqflow-io/reqflow/internal/api/middleware"
	"github.com/reqflow-io/reqflow/internal/api/routes"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/internal/config"
	"github.com/reqflow-io/reqflow/internal/config/db"
	"github.com/reqflow-io/reqflow/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Draft storage is best effort: the service runs without it.
	var drafts application.DraftStore
	if store, err := storage.NewMinioDraftStore(context.Background()); err != nil {
		log.Printf("Warning: draft storage unavailable: %v", err)
	} else {
		drafts = store
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	services := routes.RegisterRoutes(router, db.DB, drafts)

	// Seed form templates shipped with the deployment
	if _, err := os.Stat(config.SeedDir); err == nil {
		if err := services.Form.SeedTemplates(config.SeedDir); err != nil {
			log.Printf("Warning: failed to seed form templates: %v", err)
		}
	}

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
