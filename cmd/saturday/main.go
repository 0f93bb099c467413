package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comigor/saturday-go/internal/authservice"
	"github.com/comigor/saturday-go/internal/chatservice"
	"github.com/comigor/saturday-go/internal/config"
	"github.com/comigor/saturday-go/internal/conversation"
	"github.com/comigor/saturday-go/internal/exchange"
	"github.com/comigor/saturday-go/internal/handler"
	"github.com/comigor/saturday-go/internal/logger"
	"github.com/comigor/saturday-go/internal/metrics"
	"github.com/comigor/saturday-go/internal/middleware"
	"github.com/comigor/saturday-go/internal/presence"
	"github.com/comigor/saturday-go/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		logger.L.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Controller: log, exchange engine, session manager, presence signal.
	log := conversation.NewLog()
	engine := exchange.New(log, chatservice.New(cfg.ChatService), nil)
	engine.SetRecorder(collector)
	sessions := session.New(authservice.New(cfg.AuthService), engine)
	engine.SetSessions(sessions)
	typing := presence.New(engine)

	h := handler.New(sessions, engine, typing, collector)
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst)
	router := handler.NewRouter(h, authLimiter, metrics.Handler(registry))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.L.Info("starting server", "address", addr, "chat_service", cfg.ChatService.BaseURL)
	if err := runServer(ctx, srv); err != nil {
		logger.L.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
