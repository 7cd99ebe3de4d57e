// Package config loads runtime configuration for the hmarket CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. HMARKET_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-c, -config string   path to the JSON config file
//	-d string            durable store driver: sqlite, postgres, s3, memory
//	-e string            ephemeral store driver: memory, redis
//	-t string            tab session id
//	-l string            log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "900ms" or
// integer nanoseconds. Every key is optional:
//
//	{
//	  "durable_driver": "sqlite",
//	  "sqlite_path": "hmarket.db",
//	  "postgres_dsn": "postgres://localhost/hmarket",
//	  "s3_bucket": "hmarket", "s3_region": "us-east-1",
//	  "s3_endpoint": "http://localhost:9000", "s3_prefix": "hmarket/",
//	  "ephemeral_driver": "redis",
//	  "redis_url": "redis://localhost:6379/0",
//	  "redis_prefix": "hmarket:",
//	  "session_ttl": "24h",
//	  "tab_id": "",
//	  "simulated_latency": "600ms",
//	  "redirect_delay": "900ms",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// Environment variables use the same names upper-cased with the HMARKET_
// prefix, e.g. HMARKET_REDIS_URL. Durations there use time.ParseDuration.
package config
