package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/gather/internal/config"
	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/handler"
	"github.com/forgo/gather/internal/middleware"
	"github.com/forgo/gather/internal/repository"
	"github.com/forgo/gather/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply schema migrations
	if err := database.Migrate(ctx, db, cfg.Database.MigrationsDir); err != nil {
		slog.Error("failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)

	// Initialize services
	eventService := service.NewEventService(eventRepo, logger)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, logger)

	// Initialize handlers
	eventHandler := handler.NewEventHandler(eventService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Service endpoints
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Event endpoints
	mux.HandleFunc("POST /events", eventHandler.Create)
	mux.HandleFunc("GET /events", eventHandler.List)
	mux.HandleFunc("GET /events/{id}", eventHandler.Get)
	mux.HandleFunc("PUT /events/{id}", eventHandler.Update)
	mux.HandleFunc("DELETE /events/{id}", eventHandler.Delete)

	// RSVP endpoints
	mux.HandleFunc("POST /rsvps", rsvpHandler.Create)
	mux.HandleFunc("GET /rsvps", rsvpHandler.List)
	mux.HandleFunc("GET /rsvps/event/{event_id}", rsvpHandler.ListForEvent)
	mux.HandleFunc("GET /rsvps/{id}", rsvpHandler.Get)
	mux.HandleFunc("DELETE /rsvps/{id}", rsvpHandler.Delete)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
