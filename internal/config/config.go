// Package config provides application configuration loaded from environment variables.
package config

import (
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds the export journal connection settings.
type DatabaseConfig struct {
	// DSN selects the driver: empty or a sqlite path uses sqlite, anything
	// that looks like a postgres DSN uses postgres.
	DSN        string
	SQLitePath string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev                bool
	Lang               string
	OutputDir          string
	NotificationBuffer int
}

// Addr returns the listen address. The editor is a single-user tool so the
// default host is loopback.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local use.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", "127.0.0.1"),
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			DSN:        getEnv("DATABASE_DSN", ""),
			SQLitePath: getEnv("SQLITE_PATH", "invoice-studio.db"),
		},
		App: AppConfig{
			Dev:                getEnvBool("DEV", false),
			Lang:               strings.ToLower(getEnv("APP_LANG", "en")),
			OutputDir:          getEnv("OUTPUT_DIR", "exports"),
			NotificationBuffer: getEnvInt("NOTIFICATION_BUFFER", 50),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
