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
	"strings"
	"syscall"
	"time"

	"b2better/cmd"
	httpin "b2better/internal/adapters/in/http"
	"b2better/internal/adapters/out/mongo/activityrepo"
	postgres_adapter "b2better/internal/adapters/out/postgres"
	"b2better/internal/adapters/out/rabbitmq"
	"b2better/internal/adapters/out/recommendation"
	"b2better/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type closablePublisher interface {
	ports.OrderEventPublisher
	Close() error
}

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connection to postgres failed: %v", err)
	}
	if err := postgres_adapter.Migrate(gormDB); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("connection to mongo failed: %v", err)
	}
	activities := activityrepo.NewMongoActivityRepository(mongoClient.Database(configs.MongoDB))
	if err := activities.EnsureIndexes(ctx); err != nil {
		log.Fatalf("activity indexes: %v", err)
	}

	recommendations, err := recommendation.NewHTTPClient(configs.RecommendationURL, configs.RecommendationTimeout)
	if err != nil {
		log.Fatalf("recommendation client: %v", err)
	}

	publisher := newPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, activities, recommendations, publisher, logger)

	validator, err := httpin.NewTokenValidator(configs.JWTSecret)
	if err != nil {
		log.Fatalf("token validator: %v", err)
	}
	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterConfig{
		Validator:      validator,
		RateLimitRPS:   configs.RateLimitRPS,
		RateLimitBurst: configs.RateLimitBurst,
		LogLevel:       echoLogLevel(configs.LogLevel),
	}, logger)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	jobManager.StopAll()
	if err := publisher.Close(); err != nil {
		logger.Error("publisher close", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongo disconnect", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		MongoURI:              os.Getenv("MONGO_URI"),
		MongoDB:               os.Getenv("MONGO_DB"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		RecommendationURL:     os.Getenv("RECOMMENDATION_URL"),
		RecommendationTimeout: durationVariable("RECOMMENDATION_TIMEOUT", recommendation.DefaultTimeout),
		AMQPURL:               os.Getenv("AMQP_URL"),
		AMQPExchange:          os.Getenv("AMQP_EXCHANGE"),
		RetailerStatsSchedule: os.Getenv("RETAILER_STATS_SCHEDULE"),
		RateLimitRPS:          floatVariable("RATE_LIMIT_RPS", 20),
		RateLimitBurst:        intVariable("RATE_LIMIT_BURST", 0),
		LogLevel:              os.Getenv("LOG_LEVEL"),
	}
	return config
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}

func floatVariable(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return f
}

func intVariable(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func newPublisher(configs cmd.Config, logger *slog.Logger) closablePublisher {
	if configs.AMQPURL == "" {
		logger.Info("AMQP_URL is empty, order events are not published")
		return rabbitmq.NewNoopPublisher()
	}
	exchange := configs.AMQPExchange
	if exchange == "" {
		exchange = rabbitmq.DefaultExchange
	}
	publisher, err := rabbitmq.Dial(configs.AMQPURL, exchange)
	if err != nil {
		log.Fatalf("connection to rabbitmq failed: %v", err)
	}
	return publisher
}
