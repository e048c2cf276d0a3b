package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"psc-delta-consumer/internal/admin"
	"psc-delta-consumer/internal/consumer"
	"psc-delta-consumer/internal/mapper"
	"psc-delta-consumer/internal/platform/circuit"
	"psc-delta-consumer/internal/platform/config"
	"psc-delta-consumer/internal/platform/httpserver"
	"psc-delta-consumer/internal/platform/kafka"
	"psc-delta-consumer/internal/platform/logger"
	"psc-delta-consumer/internal/platform/metrics"
	"psc-delta-consumer/internal/processor"
	"psc-delta-consumer/internal/service"
	"psc-delta-consumer/internal/transformer"
)

// main wires dependencies and runs the consume loop plus the admin server
// until a shutdown signal arrives. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New(nil)

	breaker := circuit.New(cfg.API.CircuitFailureThreshold, cfg.API.CircuitSuccessThreshold)
	apiClient := service.New(log, m, breaker, cfg.API.BaseURL, cfg.API.Key, nil)
	proc := processor.New(log, transformer.New(mapper.New(nil)), apiClient)
	handler := consumer.NewDeltaHandler(log, m, proc)

	kafkaConsumer, err := kafka.NewConsumer(cfg.Kafka, log, m, handler)
	if err != nil {
		log.Error("failed to create kafka consumer", slog.Any("error", err))
		os.Exit(1)
	}
	defer kafkaConsumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := kafkaConsumer.CheckTopics(ctx); err != nil {
		log.Error("topic check failed", slog.Any("error", err))
		os.Exit(1)
	}

	srv := httpserver.New(cfg.AdminAddr, admin.NewRouter())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting consumer",
			slog.String("topic", cfg.Kafka.Topic),
			slog.String("group", cfg.Kafka.GroupID))
		return kafkaConsumer.Run(ctx)
	})
	g.Go(func() error {
		log.Info("starting admin server", slog.String("addr", cfg.AdminAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("shutdown with error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
