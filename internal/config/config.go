package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the checkout binary reads from the environment.
type Config struct {
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int

	// KafkaBrokers is optional; empty disables the Kafka status sink.
	KafkaBrokers []string
	// StatusTopic is the topic the Kafka sink publishes to.
	StatusTopic string
	// MetricsAddr is optional; empty disables the Prometheus endpoint.
	MetricsAddr string
}

// Load reads the environment. DATABASE_URL (handled in infra/db) may
// override the individual Postgres settings, so they are only required
// when it is absent.
func Load() (Config, error) {
	cfg := Config{
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),

		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		StatusTopic:  os.Getenv("ORDER_STATUS_TOPIC"),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
	}

	if port := os.Getenv("POSTGRES_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("POSTGRES_PORT must be number: %w", err)
		}
		cfg.PostgresPort = p
	}

	if os.Getenv("DATABASE_URL") == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.StatusTopic == "" {
		cfg.StatusTopic = "order.status_changed"
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
