package config

import (
	"os"
	"time"
)

// Durable backends.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Ephemeral backends. DriverMemory is shared with the durable list.
const (
	DriverRedis = "redis"
)

// Config holds runtime settings for the hmarket CLI.
//
// The env tags are read with the HMARKET_ prefix, e.g. HMARKET_DURABLE_DRIVER.
type Config struct {
	DurableDriver string `env:"DURABLE_DRIVER"`
	SQLitePath    string `env:"SQLITE_PATH"`
	PostgresDSN   string `env:"POSTGRES_DSN"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Prefix    string `env:"S3_PREFIX"`

	EphemeralDriver string        `env:"EPHEMERAL_DRIVER"`
	RedisURL        string        `env:"REDIS_URL"`
	RedisPrefix     string        `env:"REDIS_PREFIX"`
	SessionTTL      time.Duration `env:"SESSION_TTL"`
	// TabID names the tab session. Empty means a fresh id per process.
	TabID string `env:"TAB_ID"`

	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY"`
	RedirectDelay    time.Duration `env:"REDIRECT_DELAY"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DurableDriver = DriverSQLite
	c.SQLitePath = "hmarket.db"
	c.S3Region = "us-east-1"
	c.S3Prefix = "hmarket/"

	c.EphemeralDriver = DriverMemory
	c.RedisURL = "redis://localhost:6379/0"
	c.RedisPrefix = "hmarket:"
	c.SessionTTL = 24 * time.Hour

	c.SimulatedLatency = 600 * time.Millisecond
	c.RedirectDelay = 900 * time.Millisecond

	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, then the JSON file named by -c,
// then HMARKET_* environment variables, then command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
