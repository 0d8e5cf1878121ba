package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Raster.MaxPages != 50 {
		t.Errorf("MaxPages = %d, want 50", cfg.Raster.MaxPages)
	}
	if cfg.Raster.MaxBytes != 25<<20 {
		t.Errorf("MaxBytes = %d, want %d", cfg.Raster.MaxBytes, 25<<20)
	}
	if cfg.OCR.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.OCR.Workers)
	}
	if cfg.OCR.CallTimeout != 30*time.Second {
		t.Errorf("CallTimeout = %v, want 30s", cfg.OCR.CallTimeout)
	}
	if cfg.OCR.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", cfg.OCR.RetryAttempts)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RASTER_MAX_PAGES", "7")
	t.Setenv("OCR_CALL_TIMEOUT", "5s")
	t.Setenv("DB_URL", "postgres://u:p@localhost/db")

	cfg := LoadConfig()
	if cfg.Raster.MaxPages != 7 {
		t.Errorf("MaxPages = %d, want 7", cfg.Raster.MaxPages)
	}
	if cfg.OCR.CallTimeout != 5*time.Second {
		t.Errorf("CallTimeout = %v, want 5s", cfg.OCR.CallTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate returned error: %v", err)
	}
}

func TestValidateRejectsMissingDSN(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
