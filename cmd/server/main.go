package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"guestlist/config"
	"guestlist/internal/adapters/web"
	delivery "guestlist/internal/delivery/http"
	"guestlist/internal/delivery/http/controllers"
	"guestlist/internal/delivery/http/middleware"
	"guestlist/internal/observability"
	"guestlist/internal/repository/sqlite"
	"guestlist/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	if err := sqlite.InitSchema(db); err != nil {
		logger.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database schema ready", "path", cfg.DatabasePath)

	observability.Register(prometheus.DefaultRegisterer)

	renderer, err := web.NewPageRenderer()
	if err != nil {
		logger.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	slots := sqlite.NewSlotRepository(db)
	ledger := services.NewLedgerService(slots, cfg.LedgerSlot, logger)
	registration := services.NewRegistrationService(ledger)

	register := controllers.NewRegisterController(logger, registration, renderer)
	guests := controllers.NewGuestsController(logger, registration, renderer)

	mux := delivery.NewRouter(register, guests)
	handler := middleware.LoggingMiddleware(logger,
		middleware.MetricsMiddleware(observability.HTTPRequests, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
