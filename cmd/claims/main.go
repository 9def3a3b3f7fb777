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
	natsGW "github.com/fuelops/uppf-engine/services/claims/gateway/nats"
	"github.com/fuelops/uppf-engine/services/claims/handler"
	"github.com/fuelops/uppf-engine/services/claims/repository"
	"github.com/fuelops/uppf-engine/services/claims/usecase"
)

func main() {
	appName := "claims-service"
	configs := config.InitConfig("config/claims.env")

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// the claim stream is ours; the upstream streams are ensured too so the
	// consumers can start regardless of service boot order
	streams := []natspkg.StreamConfig{
		{Name: constants.StreamClaim, Subjects: []string{"claim.>"}},
		{Name: constants.StreamGPS, Subjects: []string{"gps.>"}},
		{Name: constants.StreamRecon, Subjects: []string{"volume.>", "reconciliation.>"}},
	}
	for _, stream := range streams {
		if err := natsClient.EnsureStream(streamCtx, stream); err != nil {
			logger.Fatal("Failed to ensure stream", logger.String("stream", stream.Name), logger.Err(err))
		}
	}

	claimsRepo := repository.NewClaimsRepository(postgresClient)
	claimsGW := natsGW.NewClaimsGW(natsClient)
	claimsUC := usecase.NewClaimsUC(configs, claimsRepo, claimsGW)

	natsHandler := handler.NewNatsHandler(claimsUC, natsClient)
	if err := natsHandler.InitConsumers(context.Background()); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer natsHandler.Stop()

	claimsHandler := handler.NewHandler(claimsUC, natsHandler, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": func() error { return postgresClient.GetDB().Ping() },
	})
	metrics.RegisterEndpoint(e)
	claimsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
