package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfalcao/goldmatch/internal/config"
	"github.com/mfalcao/goldmatch/internal/domain"
	"github.com/mfalcao/goldmatch/internal/engine"
	"github.com/mfalcao/goldmatch/internal/handler"
)

// orderIntent is one order instruction in the driver's fixed sequence.
type orderIntent struct {
	side     domain.Side
	price    float64
	quantity int64
	contract string
}

// session is the fixed order flow the driver feeds into the engine.
var session = []orderIntent{
	{domain.SideBuy, 1500, 2, "GCQ4 Comdty"},
	{domain.SideSell, 1500, 2, "GCQ4 Comdty"},
	{domain.SideBuy, 1550, 3, "GCZ4 Comdty"},
	{domain.SideSell, 1550, 1, "GCZ4 Comdty"},
}

func main() {
	serve := flag.Bool("serve", false, "Keep running and expose the read-only book API over HTTP")
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Feed the fixed session into the engine.
	book := engine.NewBook()
	for _, intent := range session {
		order, err := domain.NewOrder(intent.side, intent.price, intent.quantity, intent.contract)
		if err != nil {
			logger.Error("invalid order",
				slog.String("contract", intent.contract),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		book.Add(order)
	}

	book.Display()

	if !*serve {
		return
	}

	// Router.
	router := handler.NewRouter(book, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
