package models

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NATS           NATSConfig
	JWT            JWTConfig
	Logger         LoggerConfig
	GPS            GPSConfig
	Reconciliation ReconciliationConfig
	Claims         ClaimsConfig
	Settlement     SettlementConfig
	Retry          RetryConfig
	Services       ServicesConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	APIKey          string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration for operator endpoints
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// GPSConfig contains GPS validation thresholds.
// Defaults follow the regulator's illustrative tolerances and are
// overridable per deployment.
type GPSConfig struct {
	MaxSpeedKmh         float64 // implied speed above this is a violation
	SignalLossGapMin    int     // minutes without points before flagging signal loss
	StopRadiusM         float64 // cluster radius for stop detection
	StopDurationMin     int     // minutes within the radius before flagging a stop
	BacktrackEpsilonKm  float64 // distance below which a point "returns" to an earlier one
	BacktrackWindow     int     // how many earlier points to compare against
	BacktrackMinGapMin  int     // elapsed minutes before a return counts as backtracking
	MinConfidence       float64 // validity floor for the confidence score
	RouteDeviationKm    float64 // distance from the planned polyline before flagging
	ApprovedStopRadiusM float64 // search radius when matching clusters to approved stops
}

// ReconciliationConfig contains three-way reconciliation tolerances
type ReconciliationConfig struct {
	VolumeTolerancePct  float64 // pairwise variance within this is a match
	HardFailCeilingPct  float64 // variance above this fails the consignment
	ReferenceTempC      float64 // temperature volumes are corrected to
	AmbientTempC        float64 // expected ambient temperature
	AmbientTempDeltaC   float64 // reported temp further than this from ambient is flagged
	MaxTransitSpeedKmh  float64 // transit faster than this is physically implausible
	DefaultDensityKgM3  float64 // product density used when a record omits it
}

// ClaimsConfig contains claim calculation configuration
type ClaimsConfig struct {
	DefaultTariffRate float64 // currency per km-litre-equivalent, fallback when no tariff row applies
	ReferenceLitres   float64 // standard load size used to normalise partial loads
	Currency          string
	RiskGPSWeight     float64
	RiskVarianceWeight float64
	RiskHistoryWeight float64
}

// SettlementConfig contains settlement netting configuration
type SettlementConfig struct {
	RoundingTolerance  float64 // currency units; netting must tie out within this
	NegligiblePct      float64
	MinorPct           float64
	SignificantPct     float64
	LedgerAccountCode  string
	PenaltyAccountCode string
	BonusAccountCode   string
}

// RetryConfig bounds retries against external collaborators
type RetryConfig struct {
	MaxRetries     int
	BaseDelayMs    int
	MaxDelayMs     int
	TimeoutSeconds int
}

// ServicesConfig contains URLs for external collaborators
type ServicesConfig struct {
	LedgerServiceURL    string
	RegulatorServiceURL string
	TrackingServiceURL  string
}
