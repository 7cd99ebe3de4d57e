package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"durable_driver":    "s3",
		"s3_bucket":         "market",
		"s3_endpoint":       "http://localhost:9000",
		"session_ttl":       "1h",
		"simulated_latency": 250000000,
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, DriverS3, cfg.DurableDriver)
		assert.Equal(t, "market", cfg.S3Bucket)
		assert.Equal(t, "http://localhost:9000", cfg.S3Endpoint)
		assert.Equal(t, time.Hour, cfg.SessionTTL)
		assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
		assert.Equal(t, "us-east-1", cfg.S3Region, "absent keys keep the current value")
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{DurableDriver: "memory", SessionTTL: 42 * time.Second}
		require.NoError(t, parseJson(cfg, nil))

		assert.Equal(t, "memory", cfg.DurableDriver)
		assert.Equal(t, 42*time.Second, cfg.SessionTTL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJson(&Config{}, []string{"-c", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}
