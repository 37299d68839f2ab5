package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airledger/api"
	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/bootstrap"
	"github.com/Domenick1991/airledger/internal/cache"
	"github.com/Domenick1991/airledger/internal/kafka"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/repository"
	"github.com/Domenick1991/airledger/internal/service/booking"
	"github.com/Domenick1991/airledger/internal/service/flights"
)

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

	ledger := repository.NewMemoryLedger(repository.FareSchedule{
		Base: cfg.Ledger.BaseFare,
		Step: cfg.Ledger.FareStep,
	})

	var bookingOpts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka unavailable at startup, ledger events may be dropped", "error", err)
		}
		bookingOpts = append(bookingOpts, booking.WithEvents(producer, cfg.Kafka.LedgerTopic))
	}

	var idempotency api.IdempotencyStore
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Ledger.IdempotencyTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, idempotency keys fall through", "error", err)
		}
		idempotency = redisCache
	}

	flightService := flights.NewFlightService(ledger, log)
	bookingService := booking.NewBookingService(ledger, log, bookingOpts...)

	if err := bootstrap.Run(ctx, cfg, bootstrap.Deps{
		Flights:     flightService,
		Bookings:    bookingService,
		Idempotency: idempotency,
		Log:         log,
	}); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
