package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9090"
database:
  host: db
  port: 5432
  user: ledger
  password: secret
  name: airledger
  ssl_mode: disable
kafka:
  brokers: ["k1:9092", "k2:9092"]
ledger:
  fare_step: 75
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "ledger-events", cfg.Kafka.LedgerTopic)
	assert.Equal(t, 3000, cfg.Ledger.BaseFare)
	assert.Equal(t, 75, cfg.Ledger.FareStep)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "host=db port=5432 user=ledger password=secret dbname=airledger sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9090"
redis:
  addr: "localhost:6379"
`)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("LEDGER_BASE_FARE", "4000")
	t.Setenv("KAFKA_BROKERS", "a:1,b:2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, 4000, cfg.Ledger.BaseFare)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.Kafka.Brokers)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadConfig(writeConfig(t, "http: [not, a, map"))
	assert.ErrorContains(t, err, "failed to parse config")
}
