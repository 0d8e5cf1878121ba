package common

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig marks configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Raster   RasterConfig
	OCR      OCRConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
	SaveTimeout      time.Duration
}

// RasterConfig bounds what the rasterizer will accept and produce.
type RasterConfig struct {
	MaxPages    int
	MaxBytes    int64
	TargetDPI   int
	MaxImageDim int
	Pdftoppm    string
}

// OCRConfig holds OCR engine configuration. When EngineURL is set the remote
// HTTP engine is used, otherwise the local tesseract binary.
type OCRConfig struct {
	EngineURL     string
	Tesseract     string
	Language      string
	TessdataDir   string
	CallTimeout   time.Duration
	Workers       int
	RetryAttempts int
	RetryDelay    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
			SaveTimeout:      getEnvAsDuration("DB_SAVE_TIMEOUT", 10*time.Second),
		},
		Raster: RasterConfig{
			MaxPages:    getEnvAsInt("RASTER_MAX_PAGES", 50),
			MaxBytes:    int64(getEnvAsInt("RASTER_MAX_BYTES", 25<<20)),
			TargetDPI:   getEnvAsInt("RASTER_TARGET_DPI", 300),
			MaxImageDim: getEnvAsInt("RASTER_MAX_IMAGE_DIM", 2200),
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
		},
		OCR: OCRConfig{
			EngineURL:     getEnv("OCR_ENGINE_URL", ""),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			Language:      getEnv("OCR_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			CallTimeout:   getEnvAsDuration("OCR_CALL_TIMEOUT", 30*time.Second),
			Workers:       getEnvAsInt("OCR_WORKERS", 4),
			RetryAttempts: getEnvAsInt("OCR_RETRY_ATTEMPTS", 3),
			RetryDelay:    getEnvAsDuration("OCR_RETRY_DELAY", 200*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("DB_URL is required: %w", ErrInvalidConfig)
	}
	if c.Raster.MaxPages <= 0 || c.Raster.MaxBytes <= 0 {
		return fmt.Errorf("raster limits must be positive: %w", ErrInvalidConfig)
	}
	if c.OCR.Workers <= 0 {
		return fmt.Errorf("OCR_WORKERS must be positive: %w", ErrInvalidConfig)
	}
	return nil
}
