package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/kafka"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/metrics"
	"github.com/Domenick1991/airledger/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The worker copies ledger events from Kafka into the Postgres audit table.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New(os.Stderr, "error").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	events := repository.NewEventRepository(pool)
	if err := events.EnsureSchema(ctx); err != nil {
		log.Error("ensure audit schema", "error", err)
		os.Exit(1)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":9093", mux); err != nil {
			log.Warn("worker metrics server stopped", "error", err)
		}
	}()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.LedgerTopic, log)
	defer consumer.Close()

	log.Info("audit worker started", "topic", cfg.Kafka.LedgerTopic, "group_id", cfg.Kafka.GroupID)
	err = consumer.ConsumeEvents(ctx, func(ctx context.Context, event domain.LedgerEvent) error {
		stored, err := events.Append(ctx, event)
		if err != nil {
			return err
		}
		if stored {
			metrics.EventsStored.Inc()
			log.Debug("ledger event stored", "event_id", event.ID, "type", event.Type, "flight_id", event.FlightID)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	log.Info("audit worker stopped")
}
