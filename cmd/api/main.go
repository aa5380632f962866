package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/app"
	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/internal/database"
	"github.com/agrovoice/kisanbhai/internal/server"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// This is the main entry point for the API server.
// Loads in all system components
// Exposes functionalities
func main() {
	// fetch cfg
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// load global logger
	logger := Logger.New(cfg.Debug)
	logger.Info("Logger initialized")

	// database connections
	db, err := database.NewMySQL(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	rc, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Fatalf("Failed to connect to redis: %v", err)
	}

	// handle migrations
	if err := database.MigrateDB(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// wire the application
	application, err := app.NewApp(cfg, logger, db, rc)
	if err != nil {
		logger.Fatalf("Failed to build application: %v", err)
	}

	// compose router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	server.InitializeRoutes(cfg, router, application.GetServerDependencies())

	// listen with graceful exit
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.Handler(),
	}
	go func() {
		logger.Infof("Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server exiting %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown err %v", err)
	}
	logger.Info("Shutdown system")
}
