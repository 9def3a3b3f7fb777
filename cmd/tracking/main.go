package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/config"
	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/database"
	"github.com/fuelops/uppf-engine/internal/pkg/health"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/metrics"
	"github.com/fuelops/uppf-engine/internal/pkg/middleware"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/internal/pkg/server"
	natsGW "github.com/fuelops/uppf-engine/services/tracking/gateway/nats"
	"github.com/fuelops/uppf-engine/services/tracking/handler"
	"github.com/fuelops/uppf-engine/services/tracking/repository"
	"github.com/fuelops/uppf-engine/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configs := config.InitConfig("config/tracking.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  appName,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := natsClient.EnsureStream(streamCtx, natspkg.StreamConfig{
		Name:     constants.StreamGPS,
		Subjects: []string{"gps.>"},
	}); err != nil {
		logger.Fatal("Failed to ensure GPS stream", logger.Err(err))
	}

	trackingRepo := repository.NewTrackingRepository(postgresClient, redisClient)
	trackingGW := natsGW.NewTrackingGW(natsClient)
	trackingUC := usecase.NewTrackingUC(configs, trackingRepo, trackingGW)
	trackingHandler := handler.NewHandler(trackingUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": func() error { return postgresClient.GetDB().Ping() },
	})
	metrics.RegisterEndpoint(e)
	trackingHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
