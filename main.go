package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/dmirchev92/server-maystorfix-sub007/infra"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

func main() {
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:           "maystorfix",
		Hostname:           utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:           utils.GetStringEnv("PG_PASSWORD", ""),
		Port:               utils.GetStringEnv("PG_PORT", "5432"),
		User:               utils.GetStringEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetIntEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunWorker := flag.Bool("worker", false, "Run the background worker")
	flag.Parse()

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(pgConfig, logger); err != nil {
			log.Fatalf("error running migrations: %v", err)
		}
	}
	if *shouldRunWorker {
		if err := runWorker(ctx, pgConfig, logger); err != nil {
			log.Fatalf("error running worker: %v", err)
		}
	}
}

func runWorker(ctx context.Context, pgConfig infra.PgConfig, logger *slog.Logger) error {
	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig)
	if err != nil {
		return err
	}

	if err := repositories.RunRiverMigrations(ctx, pool); err != nil {
		return err
	}

	// Insert-only client first: the repositories need a client, and river uses
	// the same client type for insertion and running.
	insertClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(pool, insertClient)
	ucs := usecases.NewUsecases(repos)

	workers := river.NewWorkers()
	river.AddWorker(workers, ucs.NewNotificationDeliveryWorker(
		infra.NewLogNotificationSink(utils.LoggerFromContext(ctx))))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		FetchPollInterval: 100 * time.Millisecond,
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		RescueStuckJobsAfter: 1 * time.Minute,
		Workers:              workers,
	})
	if err != nil {
		return err
	}

	if err := riverClient.Start(ctx); err != nil {
		return err
	}

	if metricsPort := utils.GetStringEnv("METRICS_PORT", ""); metricsPort != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(":"+metricsPort, nil); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	sigintOrTerm := make(chan os.Signal, 1)
	signal.Notify(sigintOrTerm, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigintOrTerm
		stopCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		_ = riverClient.Stop(stopCtx)
	}()

	<-riverClient.Stopped()
	logger.InfoContext(ctx, "worker stopped")
	return nil
}
