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
	ledgerGW "github.com/fuelops/uppf-engine/services/settlement/gateway/ledger"
	natsGW "github.com/fuelops/uppf-engine/services/settlement/gateway/nats"
	"github.com/fuelops/uppf-engine/services/settlement/handler"
	"github.com/fuelops/uppf-engine/services/settlement/repository"
	"github.com/fuelops/uppf-engine/services/settlement/usecase"
)

func main() {
	appName := "settlement-service"
	configs := config.InitConfig("config/settlement.env")

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
	if err := natsClient.EnsureStream(streamCtx, natspkg.StreamConfig{
		Name:     constants.StreamSettlement,
		Subjects: []string{"settlement.>", "ledger.>", "review.>"},
	}); err != nil {
		logger.Fatal("Failed to ensure settlement stream", logger.Err(err))
	}

	settlementRepo := repository.NewSettlementRepository(postgresClient)
	settlementGW := natsGW.NewSettlementGW(natsClient)
	ledger := ledgerGW.NewLedgerGW(configs.Services.LedgerServiceURL, configs.Retry)
	settlementUC := usecase.NewSettlementUC(configs, settlementRepo, settlementGW, ledger)

	settlementHandler := handler.NewHandler(settlementUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": func() error { return postgresClient.GetDB().Ping() },
	})
	metrics.RegisterEndpoint(e)
	settlementHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
