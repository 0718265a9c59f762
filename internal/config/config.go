package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	CacheEnabled            bool
	CacheTTL                time.Duration
	CORSAllowedOrigins      []string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	UptraceLogsEnabled      bool
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	LogLevel                logging.Level

	Sleeper          SleeperConfig
	Season           SeasonRules
	Discord          DiscordConfig
	AdminAuth        AdminAuthConfig
	InternalJobToken string
}

// SleeperConfig drives the upstream league-platform client.
type SleeperConfig struct {
	BaseURL               string
	StatsBaseURL          string
	Timeout               time.Duration
	MaxRetries            int
	CircuitEnabled        bool
	CircuitFailureCount   int
	CircuitOpenTimeout    time.Duration
	CircuitHalfOpenMaxReq int
	PlayersCacheTTL       time.Duration
}

// SeasonRules holds the league business constants.
type SeasonRules struct {
	PlayoffStartWeek         int
	MaxWeek                  int
	CommonPlayerCandidates   int
	CommonPlayerLimit        int
	CommonPlayerStatsWorkers int
	WeeklyPayoutAmount       float64
}

type DiscordConfig struct {
	PayoutWebhookURL string
	Timeout          time.Duration
}

type AdminAuthConfig struct {
	JWTSecret string
	Issuer    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "sleeper-league-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		UptraceLogsEnabled:     uptraceLogsEnabled,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		InternalJobToken:       strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		LogLevel:               logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.DBURL == "" && appEnv != EnvDev {
		return Config{}, fmt.Errorf("DB_URL is required when APP_ENV=%s", appEnv)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0")
	}
	// The pass lock pins one pooled connection for the whole pass.
	if cfg.DBURL != "" && dbMaxOpenConns < minDBOpenConns {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= %d when DB_URL is set", minDBOpenConns)
	}
	cfg.DBMaxOpenConns = dbMaxOpenConns

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "120s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout

	if cfg.Sleeper, err = loadSleeper(); err != nil {
		return Config{}, err
	}
	if cfg.Season, err = loadSeasonRules(); err != nil {
		return Config{}, err
	}

	discordTimeout, err := time.ParseDuration(getEnv("DISCORD_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCORD_TIMEOUT: %w", err)
	}
	if discordTimeout <= 0 {
		return Config{}, fmt.Errorf("DISCORD_TIMEOUT must be > 0")
	}
	cfg.Discord = DiscordConfig{
		PayoutWebhookURL: strings.TrimSpace(getEnv("DISCORD_PAYOUT_WEBHOOK_URL", "")),
		Timeout:          discordTimeout,
	}

	cfg.AdminAuth = AdminAuthConfig{
		JWTSecret: strings.TrimSpace(getEnv("ADMIN_JWT_SECRET", "")),
		Issuer:    strings.TrimSpace(getEnv("ADMIN_JWT_ISSUER", cfg.ServiceName)),
	}
	if appEnv == EnvProd && cfg.AdminAuth.JWTSecret == "" {
		return Config{}, fmt.Errorf("ADMIN_JWT_SECRET is required when APP_ENV=prod")
	}

	return cfg, nil
}

func loadSleeper() (SleeperConfig, error) {
	timeout, err := time.ParseDuration(getEnv("SLEEPER_TIMEOUT", "15s"))
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_TIMEOUT must be > 0")
	}
	maxRetries, err := getEnvAsInt("SLEEPER_MAX_RETRIES", 0)
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_MAX_RETRIES: %w", err)
	}
	if maxRetries < 0 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_MAX_RETRIES must be >= 0")
	}
	circuitEnabled, err := strconv.ParseBool(getEnv("SLEEPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_CIRCUIT_ENABLED: %w", err)
	}
	failureCount, err := getEnvAsInt("SLEEPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if failureCount < 1 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	openTimeout, err := time.ParseDuration(getEnv("SLEEPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if openTimeout <= 0 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	halfOpenMaxReq, err := getEnvAsInt("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpenMaxReq < 1 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	playersTTL, err := time.ParseDuration(getEnv("SLEEPER_PLAYERS_CACHE_TTL", "6h"))
	if err != nil {
		return SleeperConfig{}, fmt.Errorf("parse SLEEPER_PLAYERS_CACHE_TTL: %w", err)
	}
	if playersTTL <= 0 {
		return SleeperConfig{}, fmt.Errorf("SLEEPER_PLAYERS_CACHE_TTL must be > 0")
	}

	return SleeperConfig{
		BaseURL:               strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")),
		StatsBaseURL:          strings.TrimSpace(getEnv("SLEEPER_STATS_BASE_URL", "https://api.sleeper.com")),
		Timeout:               timeout,
		MaxRetries:            maxRetries,
		CircuitEnabled:        circuitEnabled,
		CircuitFailureCount:   failureCount,
		CircuitOpenTimeout:    openTimeout,
		CircuitHalfOpenMaxReq: halfOpenMaxReq,
		PlayersCacheTTL:       playersTTL,
	}, nil
}

func loadSeasonRules() (SeasonRules, error) {
	playoffStart, err := getEnvAsInt("PLAYOFF_START_WEEK", 15)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse PLAYOFF_START_WEEK: %w", err)
	}
	maxWeek, err := getEnvAsInt("SEASON_MAX_WEEK", 18)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse SEASON_MAX_WEEK: %w", err)
	}
	if playoffStart < 1 || maxWeek < playoffStart {
		return SeasonRules{}, fmt.Errorf("PLAYOFF_START_WEEK must be within 1..SEASON_MAX_WEEK")
	}
	candidates, err := getEnvAsInt("COMMON_PLAYER_CANDIDATES", 15)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse COMMON_PLAYER_CANDIDATES: %w", err)
	}
	limit, err := getEnvAsInt("COMMON_PLAYER_LIMIT", 10)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse COMMON_PLAYER_LIMIT: %w", err)
	}
	if candidates <= 0 || limit <= 0 {
		return SeasonRules{}, fmt.Errorf("COMMON_PLAYER_CANDIDATES and COMMON_PLAYER_LIMIT must be > 0")
	}
	workers, err := getEnvAsInt("COMMON_PLAYER_STATS_WORKERS", 1)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse COMMON_PLAYER_STATS_WORKERS: %w", err)
	}
	if workers <= 0 {
		return SeasonRules{}, fmt.Errorf("COMMON_PLAYER_STATS_WORKERS must be > 0")
	}
	amount, err := strconv.ParseFloat(getEnv("WEEKLY_PAYOUT_AMOUNT", "5"), 64)
	if err != nil {
		return SeasonRules{}, fmt.Errorf("parse WEEKLY_PAYOUT_AMOUNT: %w", err)
	}
	if amount <= 0 {
		return SeasonRules{}, fmt.Errorf("WEEKLY_PAYOUT_AMOUNT must be > 0")
	}

	return SeasonRules{
		PlayoffStartWeek:         playoffStart,
		MaxWeek:                  maxWeek,
		CommonPlayerCandidates:   candidates,
		CommonPlayerLimit:        limit,
		CommonPlayerStatsWorkers: workers,
		WeeklyPayoutAmount:       amount,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const minDBOpenConns = 2

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
