package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/api"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/api/handler"
	custommw "github.com/bacembenakkari/Flight-Reservation-System/internal/api/middleware"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/application"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/cache"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/config"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/infrastructure/postgres"
	redisinfra "github.com/bacembenakkari/Flight-Reservation-System/internal/infrastructure/redis"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/logger"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/metrics"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/retry"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/worker"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLogger(os.Getenv("APP_ENV")))
	defer logger.Sync()

	m := metrics.Init()

	// Database
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := postgres.RunMigrations(db.DB, migrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Audit sink: postgres always, redis stream when configured.
	var publisher audit.Publisher
	if cfg.Redis.Enabled() {
		client := redisinfra.NewClient(&cfg.Redis)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisinfra.Ping(pingCtx, client); err != nil {
			cancel()
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cancel()
		publisher = redisinfra.NewAuditPublisher(client, cfg.Redis.Stream)
		logger.Info("audit stream publishing enabled", zap.String("stream", cfg.Redis.Stream))
	}

	recorder := worker.NewAuditRecorder(postgres.NewAuditRepository(db), publisher, cfg.Audit.BufferSize)
	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	go recorder.Start(recorderCtx)

	// Repositories and services
	txManager := postgres.NewTxManager(db)
	flightRepo := postgres.NewFlightRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	availabilityCache := cache.NewAvailabilityCache(cfg.Cache.Size, cfg.Cache.TTL)
	policy := retry.Policy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		Multiplier:  cfg.Retry.Multiplier,
	}

	flightService := application.NewFlightService(flightRepo)
	availabilityService := application.NewAvailabilityService(flightRepo, availabilityCache)
	reservationService := application.NewReservationService(
		txManager, flightRepo, bookingRepo, availabilityCache, recorder, policy)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	custommw.SetupMiddleware(e)
	e.Use(custommw.PrometheusMiddleware(m))

	flightHandler := handler.NewFlightHandler(flightService, availabilityService)
	bookingHandler := handler.NewBookingHandler(reservationService)
	healthHandler := handler.NewHealthHandler()

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.POST("/flights", flightHandler.Create)
	v1.GET("/flights", flightHandler.List)
	v1.GET("/flights/:id", flightHandler.GetByID)
	v1.GET("/flights/:id/availability", flightHandler.Availability)
	v1.GET("/flights/:id/bookings", bookingHandler.ListByFlight)
	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings/:id", bookingHandler.GetByID)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), custommw.MetricsBasicAuth())

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server start failed", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// Stop accepting audit entries only after the HTTP surface is gone,
	// then let the recorder drain what it already accepted.
	recorder.Stop()
	stopRecorder()

	logger.Info("shutdown complete")
}
