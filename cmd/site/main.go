// Package main запускает HTTP-сервер сайта сервиса уборки.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/config"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/handler"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/metrics"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/middleware"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/remote"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	// .env необязателен: в продакшене переменные приходят из окружения.
	_ = godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	if cfg.StoreAddress == "" {
		sugar.Fatalw("remote store address is required")
	}

	metrics.Register()

	store := remote.NewClient(cfg.StoreAddress)

	bookings := service.NewBookingService(store)
	gate := service.NewAuthGate(store, logger)

	session := middleware.NewSessionMiddleware(cfg.SessionSecret)
	h := handler.NewHandler(bookings, gate, logger, session)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Однократная загрузка списка паролей при старте процесса
	g.Go(func() error {
		gate.Load(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting site server", "addr", cfg.RunAddress, "store", cfg.StoreAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
