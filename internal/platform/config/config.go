// Package config builds the consumer's configuration from environment
// variables so main stays lean.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the consumer needs to run.
type Config struct {
	// AdminAddr serves the healthcheck and metrics endpoints.
	AdminAddr string

	Kafka Kafka
	API   API
}

// Kafka holds broker and topic settings. RetryTopic and ErrorTopic derive
// from Topic with fixed suffixes.
type Kafka struct {
	Brokers     []string
	Topic       string
	GroupID     string
	MaxAttempts int
	// BackoffDelay is applied before handling a record from the retry topic.
	BackoffDelay time.Duration
}

// RetryTopic is the redelivery topic for retryable failures.
func (k Kafka) RetryTopic() string { return k.Topic + "-retry" }

// ErrorTopic is the dead-letter topic for exhausted or non-retryable records.
func (k Kafka) ErrorTopic() string { return k.Topic + "-error" }

// API holds data-API client settings.
type API struct {
	BaseURL string
	Key     string

	CircuitFailureThreshold int
	CircuitSuccessThreshold int
}

// FromEnv builds a Config from environment variables, with development
// defaults for everything except the API key.
func FromEnv() Config {
	return Config{
		AdminAddr: envOr("ADMIN_ADDR", ":8080"),
		Kafka: Kafka{
			Brokers:      []string{envOr("KAFKA_BROKER_ADDR", "localhost:9092")},
			Topic:        envOr("PSC_DELTA_TOPIC", "psc-delta"),
			GroupID:      envOr("KAFKA_GROUP_ID", "psc-delta-consumer"),
			MaxAttempts:  envIntOr("MAX_RETRY_ATTEMPTS", 4),
			BackoffDelay: envDurationOr("RETRY_BACKOFF_DELAY", 100*time.Millisecond),
		},
		API: API{
			BaseURL:                 envOr("API_URL", "http://localhost:8081"),
			Key:                     os.Getenv("PSC_DATA_API_KEY"),
			CircuitFailureThreshold: envIntOr("CIRCUIT_FAILURE_THRESHOLD", 5),
			CircuitSuccessThreshold: envIntOr("CIRCUIT_SUCCESS_THRESHOLD", 3),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
