package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Ledger   LedgerConfig   `yaml:"ledger"`
}

type HTTPConfig struct {
	Address    string `yaml:"address" env:"HTTP_ADDRESS"`
	SwaggerDir string `yaml:"swagger_dir" env:"HTTP_SWAGGER_DIR"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Name     string `yaml:"name" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	LedgerTopic string   `yaml:"ledger_topic" env:"KAFKA_LEDGER_TOPIC"`
	GroupID     string   `yaml:"group_id" env:"KAFKA_GROUP_ID"`
}

type LedgerConfig struct {
	BaseFare              int `yaml:"base_fare" env:"LEDGER_BASE_FARE"`
	FareStep              int `yaml:"fare_step" env:"LEDGER_FARE_STEP"`
	IdempotencyTTLSeconds int `yaml:"idempotency_ttl_seconds" env:"LEDGER_IDEMPOTENCY_TTL_SECONDS"`
}

// LoadConfig reads the YAML file at path, then applies environment
// overrides and defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Kafka.LedgerTopic == "" {
		c.Kafka.LedgerTopic = "ledger-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "ledger-audit"
	}
	if c.Ledger.BaseFare == 0 {
		c.Ledger.BaseFare = 3000
	}
	if c.Ledger.FareStep == 0 {
		c.Ledger.FareStep = 50
	}
	if c.Ledger.IdempotencyTTLSeconds == 0 {
		c.Ledger.IdempotencyTTLSeconds = 86400
	}
}
