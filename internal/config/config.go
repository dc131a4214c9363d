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
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Shift    ShiftConfig
	Leave    LeavePolicyConfig
	SMTP     SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ShiftConfig holds the official working hours used for lateness and
// short-leave computation. Times are wall-clock "HH:MM" in Timezone.
type ShiftConfig struct {
	ClockIn  string
	ClockOut string
	Timezone string
}

// LeavePolicyConfig holds the leave crediting policy constants.
type LeavePolicyConfig struct {
	// MonthlyAutoCredit is the number of leave days credited to every
	// period ledger on creation, e.g. 1.5.
	MonthlyAutoCredit float64
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "leave_ledger"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
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

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Official shift hours
	config.Shift = ShiftConfig{
		ClockIn:  getEnv("SHIFT_CLOCK_IN", "09:00"),
		ClockOut: getEnv("SHIFT_CLOCK_OUT", "17:00"),
		Timezone: getEnv("SHIFT_TIMEZONE", "UTC"),
	}

	autoCredit, err := strconv.ParseFloat(getEnv("LEAVE_MONTHLY_AUTO_CREDIT", "1.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_MONTHLY_AUTO_CREDIT: %w", err)
	}
	config.Leave = LeavePolicyConfig{
		MonthlyAutoCredit: autoCredit,
	}

	// SMTP configuration (optional, notifier skips sending when empty)
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Leave Ledger"),
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.Parse("15:04", c.Shift.ClockIn); err != nil {
		return fmt.Errorf("SHIFT_CLOCK_IN must be HH:MM: %w", err)
	}
	if _, err := time.Parse("15:04", c.Shift.ClockOut); err != nil {
		return fmt.Errorf("SHIFT_CLOCK_OUT must be HH:MM: %w", err)
	}
	if _, err := time.LoadLocation(c.Shift.Timezone); err != nil {
		return fmt.Errorf("invalid SHIFT_TIMEZONE: %w", err)
	}
	if c.Leave.MonthlyAutoCredit < 0 {
		return fmt.Errorf("LEAVE_MONTHLY_AUTO_CREDIT must not be negative")
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

// Location returns the shift timezone, falling back to UTC.
func (c *ShiftConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
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
