package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/hmarket/internal/flagx"
	"github.com/dmitrijs2005/hmarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields are
// pointers so a file only overrides what it mentions; durations go through
// timex.Duration and accept "900ms" as well as integer nanoseconds.
type JsonConfig struct {
	DurableDriver *string `json:"durable_driver"`
	SQLitePath    *string `json:"sqlite_path"`
	PostgresDSN   *string `json:"postgres_dsn"`

	S3Bucket    *string `json:"s3_bucket"`
	S3Region    *string `json:"s3_region"`
	S3Endpoint  *string `json:"s3_endpoint"`
	S3AccessKey *string `json:"s3_access_key"`
	S3SecretKey *string `json:"s3_secret_key"`
	S3Prefix    *string `json:"s3_prefix"`

	EphemeralDriver *string         `json:"ephemeral_driver"`
	RedisURL        *string         `json:"redis_url"`
	RedisPrefix     *string         `json:"redis_prefix"`
	SessionTTL      *timex.Duration `json:"session_ttl"`
	TabID           *string         `json:"tab_id"`

	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	RedirectDelay    *timex.Duration `json:"redirect_delay"`

	LogLevel  *string `json:"log_level"`
	LogFormat *string `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag it leaves cfg untouched.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DurableDriver, jc.DurableDriver)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)

	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Prefix, jc.S3Prefix)

	setString(&cfg.EphemeralDriver, jc.EphemeralDriver)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.TabID, jc.TabID)

	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}

	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
