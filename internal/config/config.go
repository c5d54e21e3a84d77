package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds attendance policy configuration.
// ScanWindow is the permitted tap range before a session's start and
// after its end. ReconcileHour is the local hour at which the daily
// batch processes yesterday's records.
type AttendanceConfig struct {
	ScanWindow    time.Duration
	Timezone      string
	ReconcileHour int
	BatchWorkers  int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "presensia"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Attendance policy configuration
	scanWindow, err := time.ParseDuration(getEnv("ATTENDANCE_SCAN_WINDOW", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SCAN_WINDOW: %w", err)
	}

	reconcileHour, err := strconv.Atoi(getEnv("ATTENDANCE_RECONCILE_HOUR", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_RECONCILE_HOUR: %w", err)
	}

	batchWorkers, err := strconv.Atoi(getEnv("ATTENDANCE_BATCH_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_BATCH_WORKERS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		ScanWindow:    scanWindow,
		Timezone:      getEnv("ATTENDANCE_TIMEZONE", "Asia/Jakarta"),
		ReconcileHour: reconcileHour,
		BatchWorkers:  batchWorkers,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Attendance.ScanWindow <= 0 {
		return fmt.Errorf("ATTENDANCE_SCAN_WINDOW must be positive")
	}
	if c.Attendance.ReconcileHour < 0 || c.Attendance.ReconcileHour > 23 {
		return fmt.Errorf("ATTENDANCE_RECONCILE_HOUR must be between 0 and 23")
	}
	if c.Attendance.BatchWorkers < 1 {
		return fmt.Errorf("ATTENDANCE_BATCH_WORKERS must be at least 1")
	}
	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the configured attendance timezone, falling back to
// UTC if the name cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
