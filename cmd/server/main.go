package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omize10/probatepath-sub002/internal/config"
	"github.com/omize10/probatepath-sub002/internal/database"
	"github.com/omize10/probatepath-sub002/internal/handlers"
	"github.com/omize10/probatepath-sub002/internal/logger"
	"github.com/omize10/probatepath-sub002/internal/middleware"
	"github.com/omize10/probatepath-sub002/internal/render"
	"github.com/omize10/probatepath-sub002/internal/repository"
	"github.com/omize10/probatepath-sub002/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting ProbatePath API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Parse the embedded court form templates up front so a broken template
	// fails startup, not the first generation request.
	renderer, err := render.New(log)
	if err != nil {
		log.Fatal("Failed to load form templates", err, nil)
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	caseRepo := repository.NewCaseRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	caseService := services.NewCaseService(caseRepo, documentRepo, renderer, log)

	// Initialize handlers
	caseHandler := handlers.NewCaseHandler(caseService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		cases := v1.Group("/cases")
		{
			cases.POST("", caseHandler.Create)
			cases.GET("/:id", caseHandler.Get)
			cases.POST("/:id/priority/resolve", caseHandler.ResolvePriority)
			cases.GET("/:id/distribution", caseHandler.GetDistribution)
			cases.POST("/:id/distribution/confirm", caseHandler.ConfirmDistribution)
			cases.GET("/:id/forms", caseHandler.RequiredForms)
			cases.POST("/:id/documents", caseHandler.GenerateDocuments)
			cases.GET("/:id/documents", caseHandler.ListDocuments)
			cases.GET("/:id/documents/:code", caseHandler.GetDocument)
		}
	}

	// Create HTTP server. Document generation renders a whole form set in one
	// request, so the write timeout follows the configured render limit.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		WriteTimeout: time.Duration(cfg.Render.TimeoutSeconds) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
