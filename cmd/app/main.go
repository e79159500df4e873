package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"kitchenpos/cmd"
	"kitchenpos/internal/adapters/out/eventlog"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("kitchenpos stopped: %v", err)
	}
}

func run() error {
	// A missing .env is fine; variables already set in the environment win.
	_ = godotenv.Load(".env")

	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	publisher, closePublisher, err := newEventPublisher(configs, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		AMQPURL:                 os.Getenv("AMQP_URL"),
		AMQPExchange:            envOrDefault("AMQP_EXCHANGE", "kitchenpos.events"),
		OccupancyReportSchedule: envOrDefault("OCCUPANCY_REPORT_SCHEDULE", jobs.DefaultOccupancyReportSchedule),
		MenuCacheSize:           envInt("MENU_CACHE_SIZE", 1024),
		LogLevel:                envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Warnf("%s is not a number, using %d", key, fallback)
		return fallback
	}
	return value
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newEventPublisher logs every domain event and, when AMQP_URL is set, also
// sends it to RabbitMQ.
func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func(), error) {
	if configs.AMQPURL == "" {
		return eventlog.NewPublisher(logger, nil), func() {}, nil
	}

	broker, err := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	closeBroker := func() {
		if err := broker.Close(); err != nil {
			logger.Error("Failed to close rabbitmq publisher", "error", err)
		}
	}

	return eventlog.NewPublisher(logger, broker), closeBroker, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateWebServer()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server started", "port", port)
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("HTTP server shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
