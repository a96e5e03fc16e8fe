package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the catalog service
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// NATS configuration
	NATS NATSConfig

	// Kafka configuration
	Kafka KafkaConfig

	// Storage configuration
	Storage StorageConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	HTTPPort     int
	Environment  string
	ServiceName  string
	LogLevel     string
	Broker       string // nats or kafka
	ShutdownTime time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL            string
	ClientID       string
	DurableName    string
	EncoderSubject string
	MaxReconnect   int
	ReconnectWait  time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers    []string
	TopicMedia string
}

// StorageConfig holds media storage configuration
type StorageConfig struct {
	Type      string // local or s3
	LocalPath string
	S3Config  S3Config
}

// S3Config holds S3 configuration
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	UseSSL          bool
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:     getEnvAsInt("HTTP_PORT", 8080),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			Broker:       getEnv("MESSAGE_BROKER", "nats"),
			ShutdownTime: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "catalog"),
			Password:     getEnv("DB_PASSWORD", "catalog"),
			Database:     getEnv("DB_NAME", "catalog"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", "nats://localhost:4222"),
			ClientID:       fmt.Sprintf("%s-%s", serviceName, getEnv("HOSTNAME", "local")),
			DurableName:    fmt.Sprintf("%s-durable", serviceName),
			EncoderSubject: getEnv("NATS_ENCODER_SUBJECT", "encoder.video.status"),
			MaxReconnect:   getEnvAsInt("NATS_MAX_RECONNECT", 60),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    []string{getEnv("KAFKA_BROKER", "localhost:9092")},
			TopicMedia: getEnv("KAFKA_TOPIC_MEDIA", "catalog.video.media"),
		},
		Storage: StorageConfig{
			Type:      getEnv("STORAGE_TYPE", "local"),
			LocalPath: getEnv("STORAGE_LOCAL_PATH", "/var/catalog/media"),
			S3Config: S3Config{
				Endpoint:        getEnv("S3_ENDPOINT", ""),
				AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
				Bucket:          getEnv("S3_BUCKET", "catalog-media"),
				Region:          getEnv("S3_REGION", "us-east-1"),
				UseSSL:          getEnvAsBool("S3_USE_SSL", true),
			},
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return defaultValue
}

// DSN returns the database connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
}
