package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chopbar/internal/config"
	"chopbar/internal/database"
	"chopbar/internal/handlers"
	"chopbar/internal/middleware"
	"chopbar/internal/repository"
	"chopbar/internal/service"
	"chopbar/pkg/logging"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the database. An unset DATABASE_URL is not fatal: the server
	// runs in degraded mode on the built-in menu.
	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if db.Configured() {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if h := db.Health(probeCtx); h.OK {
			log.Info("database connected successfully")
		} else {
			// Not fatal: the database may come up later; queries will keep
			// reporting their own failures.
			log.Warn("database connection probe failed", "reason", h.Reason)
		}
		cancel()
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, log)
	orderService := service.NewOrderService(menuRepo, orderRepo, db, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the frontend is served separately (Live Server
	// during development), so the API answers cross-origin requests.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.ServeHTTP)
		r.Get("/menu", menuHandler.ListMenu)
		r.Get("/orders", orderHandler.ListOrders)
		r.Post("/orders", orderHandler.CreateOrder)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
