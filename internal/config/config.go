package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresConfig PostgresConfig
	HTTPConfig     HTTPConfig
	JWTConfig      JWTConfig
	KafkaConfig    KafkaConfig
	TracingConfig  TracingConfig
	MetricsConfig  MetricsConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

type HTTPConfig struct {
	Port string
}

type JWTConfig struct {
	SecretKey  string
	TTLMinutes int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type TracingConfig struct {
	Endpoint string
}

type MetricsConfig struct {
	Port string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	ttl, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL_MINUTES must be a number: %w", err)
	}

	config := &Config{
		PostgresConfig: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "user"),
			Password: getEnv("POSTGRES_PASSWORD", "password"),
			DBName:   getEnv("POSTGRES_DB", "dbname"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		HTTPConfig: HTTPConfig{
			Port: getEnv("HTTP_PORT", "8000"),
		},
		JWTConfig: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", ""),
			TTLMinutes: ttl,
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitEnv("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "note-share-events"),
		},
		TracingConfig: TracingConfig{
			Endpoint: getEnv("JAEGER_ENDPOINT", ""),
		},
		MetricsConfig: MetricsConfig{
			Port: getEnv("METRICS_PORT", ":8080"),
		},
	}

	if config.JWTConfig.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
