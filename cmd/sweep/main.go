package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/config"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/postgres"
	reservationRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	sweepCompletionsUC "github.com/m04kA/SMC-CanchaBooking/internal/usecase/sweep_completions"
	"github.com/m04kA/SMC-CanchaBooking/pkg/clock"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
	"github.com/m04kA/SMC-CanchaBooking/pkg/metrics"
)

// Разовый проход: все pending бронирования с прошедшей датой переводятся в completed.
// Запускается по cron вместо встроенного планировщика.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var publisher interface {
		Publish(ctx context.Context, event events.ReservationEvent) error
		Close() error
	} = events.NoopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Queue, log)
		if err != nil {
			log.Fatal("Failed to initialize event publisher: %v", err)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	// Счётчики процесса не экспортируются, но use case их ожидает
	var metricsCollector *metrics.Metrics

	uc := sweepCompletionsUC.NewUseCase(
		reservationRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		publisher,
		metricsCollector,
		clock.New(cfg.Location()),
		log,
	)

	resp, err := uc.Execute(ctx)
	if err != nil {
		log.Fatal("Sweep failed: %v", err)
	}
	log.Info("Sweep finished: completed=%d", resp.Completed)
}
