package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Stream    StreamConfig
	Billing   BillingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	BillingCronExpression  string
	ReminderCronExpression string
	RentDueDay             int
}

// StreamConfig selects how store changes are propagated to watchers.
// "memory" keeps everything in-process, "postgres" fans out over LISTEN/NOTIFY.
type StreamConfig struct {
	Driver  string
	Channel string
}

// BillingConfig holds billing computation settings
type BillingConfig struct {
	Timezone           string
	IncomeWindowMonths int
	WriteWorkers       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "apartment"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000"),
		},
		Scheduler: SchedulerConfig{
			BillingCronExpression:  getEnv("BILLING_CRON_EXPRESSION", "0 0 0 1 * *"),
			ReminderCronExpression: getEnv("REMINDER_CRON_EXPRESSION", "0 0 9 * * *"),
			RentDueDay:             getEnvAsInt("RENT_DUE_DAY", 5),
		},
		Stream: StreamConfig{
			Driver:  strings.ToLower(getEnv("STREAM_DRIVER", "memory")),
			Channel: getEnv("STREAM_CHANNEL", "store_changes"),
		},
		Billing: BillingConfig{
			Timezone:           getEnv("BILLING_TIMEZONE", "Asia/Bangkok"),
			IncomeWindowMonths: getEnvAsInt("INCOME_WINDOW_MONTHS", 6),
			WriteWorkers:       getEnvAsInt("WRITE_WORKERS", 8),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Stream.Driver != "memory" && c.Stream.Driver != "postgres" {
		return fmt.Errorf("unsupported STREAM_DRIVER %q", c.Stream.Driver)
	}
	if c.Scheduler.RentDueDay < 1 || c.Scheduler.RentDueDay > 28 {
		return fmt.Errorf("RENT_DUE_DAY must be between 1 and 28, got %d", c.Scheduler.RentDueDay)
	}
	if c.Billing.IncomeWindowMonths < 1 {
		return fmt.Errorf("INCOME_WINDOW_MONTHS must be positive")
	}
	if c.Billing.WriteWorkers < 1 {
		c.Billing.WriteWorkers = 1
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// GetURL returns the connection string in URL form, as expected by pgx
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
