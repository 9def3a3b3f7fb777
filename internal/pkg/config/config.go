package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// InitConfig loads configuration from the environment, reading a .env file
// first when running locally.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.APIKey = GetEnv("SERVER_API_KEY", "")

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// GPS validation thresholds
	configs.GPS.MaxSpeedKmh = GetEnvAsFloat("GPS_MAX_SPEED_KMH", 120.0)
	configs.GPS.SignalLossGapMin = GetEnvAsInt("GPS_SIGNAL_LOSS_GAP_MIN", 30)
	configs.GPS.StopRadiusM = GetEnvAsFloat("GPS_STOP_RADIUS_M", 200.0)
	configs.GPS.StopDurationMin = GetEnvAsInt("GPS_STOP_DURATION_MIN", 45)
	configs.GPS.BacktrackEpsilonKm = GetEnvAsFloat("GPS_BACKTRACK_EPSILON_KM", 0.2)
	configs.GPS.BacktrackWindow = GetEnvAsInt("GPS_BACKTRACK_WINDOW", 50)
	configs.GPS.BacktrackMinGapMin = GetEnvAsInt("GPS_BACKTRACK_MIN_GAP_MIN", 20)
	configs.GPS.MinConfidence = GetEnvAsFloat("GPS_MIN_CONFIDENCE", 0.5)
	configs.GPS.RouteDeviationKm = GetEnvAsFloat("GPS_ROUTE_DEVIATION_KM", 5.0)
	configs.GPS.ApprovedStopRadiusM = GetEnvAsFloat("GPS_APPROVED_STOP_RADIUS_M", 500.0)

	// Reconciliation tolerances
	configs.Reconciliation.VolumeTolerancePct = GetEnvAsFloat("RECON_VOLUME_TOLERANCE_PCT", 0.5)
	configs.Reconciliation.HardFailCeilingPct = GetEnvAsFloat("RECON_HARD_FAIL_CEILING_PCT", 5.0)
	configs.Reconciliation.ReferenceTempC = GetEnvAsFloat("RECON_REFERENCE_TEMP_C", 15.0)
	configs.Reconciliation.AmbientTempC = GetEnvAsFloat("RECON_AMBIENT_TEMP_C", 27.0)
	configs.Reconciliation.AmbientTempDeltaC = GetEnvAsFloat("RECON_AMBIENT_TEMP_DELTA_C", 10.0)
	configs.Reconciliation.MaxTransitSpeedKmh = GetEnvAsFloat("RECON_MAX_TRANSIT_SPEED_KMH", 110.0)
	configs.Reconciliation.DefaultDensityKgM3 = GetEnvAsFloat("RECON_DEFAULT_DENSITY_KG_M3", 830.0)

	// Claim calculation
	configs.Claims.DefaultTariffRate = GetEnvAsFloat("CLAIMS_DEFAULT_TARIFF_RATE", 0.15)
	configs.Claims.ReferenceLitres = GetEnvAsFloat("CLAIMS_REFERENCE_LITRES", 36000.0)
	configs.Claims.Currency = GetEnv("CLAIMS_CURRENCY", "GHS")
	configs.Claims.RiskGPSWeight = GetEnvAsFloat("CLAIMS_RISK_GPS_WEIGHT", 0.5)
	configs.Claims.RiskVarianceWeight = GetEnvAsFloat("CLAIMS_RISK_VARIANCE_WEIGHT", 0.3)
	configs.Claims.RiskHistoryWeight = GetEnvAsFloat("CLAIMS_RISK_HISTORY_WEIGHT", 0.2)

	// Settlement netting
	configs.Settlement.RoundingTolerance = GetEnvAsFloat("SETTLEMENT_ROUNDING_TOLERANCE", 0.01)
	configs.Settlement.NegligiblePct = GetEnvAsFloat("SETTLEMENT_NEGLIGIBLE_PCT", 2.0)
	configs.Settlement.MinorPct = GetEnvAsFloat("SETTLEMENT_MINOR_PCT", 10.0)
	configs.Settlement.SignificantPct = GetEnvAsFloat("SETTLEMENT_SIGNIFICANT_PCT", 25.0)
	configs.Settlement.LedgerAccountCode = GetEnv("SETTLEMENT_LEDGER_ACCOUNT_CODE", "UPPF-CLAIMS")
	configs.Settlement.PenaltyAccountCode = GetEnv("SETTLEMENT_PENALTY_ACCOUNT_CODE", "UPPF-PENALTIES")
	configs.Settlement.BonusAccountCode = GetEnv("SETTLEMENT_BONUS_ACCOUNT_CODE", "UPPF-BONUSES")

	// Retry policy for external collaborators
	configs.Retry.MaxRetries = GetEnvAsInt("RETRY_MAX_RETRIES", 3)
	configs.Retry.BaseDelayMs = GetEnvAsInt("RETRY_BASE_DELAY_MS", 100)
	configs.Retry.MaxDelayMs = GetEnvAsInt("RETRY_MAX_DELAY_MS", 30000)
	configs.Retry.TimeoutSeconds = GetEnvAsInt("RETRY_TIMEOUT_SECONDS", 30)

	// External collaborators
	configs.Services.LedgerServiceURL = GetEnv("LEDGER_SERVICE_URL", "http://localhost:9801")
	configs.Services.RegulatorServiceURL = GetEnv("REGULATOR_SERVICE_URL", "http://localhost:9802")
	configs.Services.TrackingServiceURL = GetEnv("TRACKING_SERVICE_URL", "http://localhost:9701")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
