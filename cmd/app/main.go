package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivethrough/cmd"
	httpin "drivethrough/internal/adapters/in/http"
	"drivethrough/internal/adapters/out/llm"
	"drivethrough/internal/adapters/out/menufile"
	"drivethrough/internal/adapters/out/postgres/archiverepo"
	"drivethrough/internal/adapters/out/rabbitmq"
	"drivethrough/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultHTTPPort       = "8080"
	defaultAMQPExchange   = "drivethrough.orders"
	defaultSessionIdleTTL = 15 * time.Minute
	shutdownTimeout       = 10 * time.Second
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := menufile.Load(configs.MenuFile)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	gormDB := openDatabase(configs)

	publisher, conn := openPublisher(ctx, configs, logger)
	if conn != nil {
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				logger.Warn("Failed to close AMQP connection", "error", closeErr)
			}
		}()
	}

	app, err := cmd.NewCompositionRoot(
		configs,
		gormDB,
		catalog,
		newProposer(configs, logger),
		publisher,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   envOrDefault("AMQP_EXCHANGE", defaultAMQPExchange),
		LLMAPIKey:      os.Getenv("LLM_API_KEY"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		LLMBaseURL:     os.Getenv("LLM_BASE_URL"),
		MenuFile:       os.Getenv("MENU_FILE"),
		SessionIdleTTL: defaultSessionIdleTTL,
	}

	if ttl := os.Getenv("SESSION_IDLE_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid SESSION_IDLE_TTL %q", ttl)
		}
		config.SessionIdleTTL = parsed
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openDatabase connects to the order archive; nil when DB_HOST is not set.
func openDatabase(configs cmd.Config) *gorm.DB {
	if !configs.DatabaseEnabled() {
		log.Warn("DB_HOST is not set, orders will not be archived")
		return nil
	}

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = db.AutoMigrate(archiverepo.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

// openPublisher connects to RabbitMQ; the publisher is nil when AMQP_URL is not set.
func openPublisher(
	ctx context.Context,
	configs cmd.Config,
	logger *slog.Logger,
) (ports.OrderEventPublisher, *rabbitmq.Connection) {
	if configs.AMQPURL == "" {
		log.Warn("AMQP_URL is not set, order events are disabled")
		return nil, nil
	}

	conn, err := rabbitmq.Dial(ctx, configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	publisher, err := rabbitmq.NewPublisher(conn, logger)
	if err != nil {
		log.Fatalf("Failed to create order event publisher: %v", err)
	}
	return publisher, conn
}

// newProposer builds the LLM intent producer; nil when LLM_API_KEY is not set.
func newProposer(configs cmd.Config, logger *slog.Logger) ports.IntentProposer {
	if configs.LLMAPIKey == "" {
		log.Warn("LLM_API_KEY is not set, only structured intents are accepted")
		return nil
	}

	proposer, err := llm.NewOpenAIProposer(
		configs.LLMAPIKey,
		configs.LLMModel,
		configs.LLMBaseURL,
		llm.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create intent proposer: %v", err)
	}
	return proposer
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
