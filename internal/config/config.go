package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/geniesugar/geniesugar/internal/logger"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Dexcom DexcomConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port   string
	AppURL string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host string
	Port string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type DexcomConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type AuthConfig struct {
	// TokenSecret signs email verification and password reset tokens.
	TokenSecret string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:   getEnvOrDefault("PORT", "8080"),
			AppURL: getEnvOrDefault("APP_URL", "http://localhost:8080"),
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "geniesugar"),
		},
		Redis: RedisConfig{
			Host: getEnvOrDefault("REDIS_HOST", "localhost"),
			Port: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnvOrDefault("FROM_EMAIL", "no-reply@geniesugar.com"),
			FromName: getEnvOrDefault("FROM_NAME", "GenieSugar"),
		},
		Dexcom: DexcomConfig{
			ClientID:     os.Getenv("DEXCOM_CLIENT_ID"),
			ClientSecret: os.Getenv("DEXCOM_CLIENT_SECRET"),
			BaseURL:      getEnvOrDefault("DEXCOM_BASE_URL", "https://sandbox-api.dexcom.com"),
		},
		Auth: AuthConfig{
			TokenSecret: getEnvOrDefault("TOKEN_SECRET", "geniesugar-secret-change-in-prod"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
