package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds every application setting
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Models    ModelsConfig
	Scoring   ScoringConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
	Tracing   TracingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Bootstrap BootstrapConfig
	Cache     CacheConfig
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port         string
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
	Mode         string
}

// DatabaseConfig configures the PostgreSQL connection
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig configures the Redis client. Modes: single, sentinel, cluster.
type RedisConfig struct {
	Mode string `mapstructure:"mode"`

	// Addrs is used by every mode; single mode takes the first entry
	Addrs []string `mapstructure:"addrs"`

	// Addr is the single-mode fallback when Addrs is empty
	Addr string `mapstructure:"addr"`

	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	MasterName string `mapstructure:"master_name"`

	MaxRetries      int `mapstructure:"max_retries"`
	MinRetryBackoff int `mapstructure:"min_retry_backoff"` // ms
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"` // ms
}

// JWTConfig configures access token validation
type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	Issuer        string `mapstructure:"issuer"`
	ExpirationHrs int    `mapstructure:"expiration_hrs"`
}

// ModelsConfig points at the exported model artifacts
type ModelsConfig struct {
	Dir             string `mapstructure:"dir"`
	InterestFile    string `mapstructure:"interest_file"`
	PersonalityFile string `mapstructure:"personality_file"`
	ValueFile       string `mapstructure:"value_file"`
}

// InterestPath returns the interest artifact location
func (m ModelsConfig) InterestPath() string { return filepath.Join(m.Dir, m.InterestFile) }

// PersonalityPath returns the personality artifact location
func (m ModelsConfig) PersonalityPath() string { return filepath.Join(m.Dir, m.PersonalityFile) }

// ValuePath returns the value artifact location
func (m ModelsConfig) ValuePath() string { return filepath.Join(m.Dir, m.ValueFile) }

// ScoringConfig tunes result normalization
type ScoringConfig struct {
	ValueTargetMin float64 `mapstructure:"value_target_min"`
	ValueTargetMax float64 `mapstructure:"value_target_max"`
	InterestTopK   int     `mapstructure:"interest_top_k"`
	ValueTopK      int     `mapstructure:"value_top_k"`
}

// LoggingConfig configures zap and file rotation
type LoggingConfig struct {
	Level      string
	File       string
	MaxSize    int `mapstructure:"max_size"` // MB
	MaxBackups int `mapstructure:"max_backups"`
	MaxAge     int `mapstructure:"max_age"` // days
	Compress   bool
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool
}

// TracingConfig configures the jaeger exporter
type TracingConfig struct {
	Enabled     bool
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// CORSConfig lists allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig limits assessment submissions per user
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

// BootstrapConfig seeds roles and the first administrator
type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminUsername string `mapstructure:"admin_username"`
}

// CacheConfig sets cache lifetimes
type CacheConfig struct {
	ResultTTL   time.Duration `mapstructure:"result_ttl"`
	FeedbackTTL time.Duration `mapstructure:"feedback_ttl"`
}

// PostgresConnectionString builds the PostgreSQL DSN
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL builds the URL form used by golang-migrate and lib/pq
func (d *DatabaseConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("server.mode", "debug")

	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrations_path", "migrations")

	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.addr", "localhost:6379")

	vip.SetDefault("jwt.issuer", "assessment-api")
	vip.SetDefault("jwt.expiration_hrs", 24)

	vip.SetDefault("models.dir", "models")
	vip.SetDefault("models.interest_file", "interest.json")
	vip.SetDefault("models.personality_file", "personality.json")
	vip.SetDefault("models.value_file", "value.json")

	vip.SetDefault("scoring.value_target_min", 1.0)
	vip.SetDefault("scoring.value_target_max", 10.0)
	vip.SetDefault("scoring.interest_top_k", 2)
	vip.SetDefault("scoring.value_top_k", 3)

	vip.SetDefault("logging.level", "info")
	vip.SetDefault("logging.file", "logs/app.log")
	vip.SetDefault("logging.max_size", 100)
	vip.SetDefault("logging.max_backups", 5)
	vip.SetDefault("logging.max_age", 30)

	vip.SetDefault("metrics.enabled", true)

	vip.SetDefault("tracing.service_name", "assessment-api")
	vip.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")
	vip.SetDefault("tracing.sample_ratio", 1.0)

	vip.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	vip.SetDefault("rate_limit.max_requests", 10)
	vip.SetDefault("rate_limit.window", time.Minute)

	vip.SetDefault("bootstrap.admin_username", "admin")

	vip.SetDefault("cache.result_ttl", 24*time.Hour)
	vip.SetDefault("cache.feedback_ttl", 10*time.Minute)
}

func bindEnv(vip *viper.Viper) {
	// Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	// Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// JWT
	vip.BindEnv("jwt.secret", "JWT_SECRET")
	vip.BindEnv("jwt.issuer", "JWT_ISSUER")
	vip.BindEnv("jwt.expiration_hrs", "JWT_EXPIRATION_HRS")

	// Models and scoring
	vip.BindEnv("models.dir", "MODELS_DIR")
	vip.BindEnv("scoring.value_target_min", "SCORING_VALUE_TARGET_MIN")
	vip.BindEnv("scoring.value_target_max", "SCORING_VALUE_TARGET_MAX")

	// Observability
	vip.BindEnv("logging.level", "LOG_LEVEL")
	vip.BindEnv("logging.file", "LOG_FILE")
	vip.BindEnv("metrics.enabled", "METRICS_ENABLED")
	vip.BindEnv("tracing.enabled", "TRACING_ENABLED")
	vip.BindEnv("tracing.endpoint", "TRACING_ENDPOINT")

	// Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.mode", "GIN_MODE")

	// Bootstrap
	vip.BindEnv("bootstrap.admin_email", "ADMIN_EMAIL")
	vip.BindEnv("bootstrap.admin_password", "ADMIN_PASSWORD")
}

// Load reads the configuration from an optional file plus environment variables
func Load(configPath string) (*Config, error) {
	vip := viper.New() // own instance, no global state

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// a missing file is fine, env vars still apply
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
				log.Printf("config file '%s' not found, using environment and defaults", configPath)
			} else {
				log.Printf("warning: could not read config file '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required settings and value ranges
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required in config (check JWT_SECRET env var)")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if c.Scoring.ValueTargetMin >= c.Scoring.ValueTargetMax {
		return fmt.Errorf("scoring.value_target_min (%v) must be below scoring.value_target_max (%v)",
			c.Scoring.ValueTargetMin, c.Scoring.ValueTargetMax)
	}
	if c.Scoring.InterestTopK <= 0 || c.Scoring.ValueTopK <= 0 {
		return fmt.Errorf("scoring top-k values must be positive")
	}
	if c.Server.Mode == "release" && c.Database.Password == "" {
		return fmt.Errorf("database password is required in release mode (check DATABASE_PASSWORD env var)")
	}
	return nil
}
