package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/api"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/config"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/room"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/store"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "world_seed", cfg.World.Seed, "log_level", cfg.Logging.Level)

	// Initialize durable persistence. An empty DB path runs the engine on
	// in-process state only.
	var roomStore room.Store = room.NullStore{}
	var overrides catalog.OverrideStore
	if cfg.Database.Path != "" {
		db, err := initializeDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database", "error", err)
		}
		defer db.Close()

		log.Debug("Running database migrations")
		if err := store.RunMigrations(db); err != nil {
			log.Fatal("Failed to run database migrations", "error", err)
		}
		log.Info("Database migrations completed")

		roomStore = store.NewRoomStore(db)
		overrides = store.NewDefinitionStore(db)
	} else {
		log.Warn("No database path configured, running without durable persistence")
	}

	// Wire the generation engine
	log.Debug("Initializing world-generation engine")
	cat := catalog.New(overrides)
	classifier := worldgen.NewClassifier(cfg.World.Seed, cfg.World.DifficultyScale, cfg.World.MaxDifficulty)
	cache := room.NewCache()
	roomService := room.NewService(cache, roomStore, cat, classifier)
	log.Debug("World-generation engine initialized")

	// Start background services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go startBackgroundServices(ctx, cache)

	// Initialize API handlers
	handler := api.NewHandler(roomService, cat)
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting Verdantia engine server", "port", cfg.Server.Port, "world_seed", cfg.World.Seed)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	received := <-quit

	log.Info("Shutting down server...", "signal", received.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	switch cfg.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", cfg.Level)
		log.SetLevel(log.InfoLevel)
	}

	if cfg.Format == "pretty" || !cfg.Structured {
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	}

	log.SetPrefix("[verdantia] ")
}

func initializeDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	log.Debug("Opening database connection", "path", cfg.Path)
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database initialized", "path", cfg.Path)
	return db, nil
}

// startBackgroundServices logs world growth periodically. Rooms are never
// evicted, so the cache size doubles as a count of explored coordinates.
func startBackgroundServices(ctx context.Context, cache *room.Cache) {
	statsTicker := time.NewTicker(5 * time.Minute)
	defer statsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Background services stopped")
			return

		case <-statsTicker.C:
			log.Info("World stats", "cached_rooms", cache.Len())
		}
	}
}
