package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyratzis/keepalive-demo/config"
	"github.com/akyratzis/keepalive-demo/internal/handler"
	"github.com/akyratzis/keepalive-demo/internal/httpserver"
	"github.com/akyratzis/keepalive-demo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	staticHandler := handler.NewStaticHandler(log)

	srv, err := httpserver.New(cfg.Server.Address, setupRouter(staticHandler), cfg.IdleTimeout())
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	log.Info("Server listening",
		slog.String("address", cfg.Server.Address),
		slog.Duration("idle_timeout", cfg.IdleTimeout()))

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}
