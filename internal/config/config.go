package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty means the API runs open (local/dev use).
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Analysis
	SchemaFile    string
	MinIntroWords int

	// Extraction
	PDFFallbackPdftotext bool
	OCREnabled           bool
	OCRLang              string

	// UploadsDir archives raw uploads when set; empty disables archiving.
	UploadsDir string
}

func Load() Config {
	cfg := Config{
		Port: envOr("TESISCAN_PORT", "8085"),

		APIKey: os.Getenv("TESISCAN_API_KEY"),

		WorkerCount:  envInt("TESISCAN_WORKER_COUNT", 4),
		MaxQueueSize: envInt("TESISCAN_MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("TESISCAN_MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("TESISCAN_JOB_TTL", 1*time.Hour),

		SchemaFile:    os.Getenv("TESISCAN_SCHEMA_FILE"),
		MinIntroWords: envInt("TESISCAN_MIN_INTRO_WORDS", 100),

		PDFFallbackPdftotext: envBool("TESISCAN_PDF_FALLBACK_PDFTOTEXT", true),
		OCREnabled:           envBool("TESISCAN_OCR_ENABLED", false),
		OCRLang:              envOr("TESISCAN_OCR_LANG", "spa"),

		UploadsDir: os.Getenv("TESISCAN_UPLOADS_DIR"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.MinIntroWords <= 0 {
		cfg.MinIntroWords = 100
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("TESISCAN_PORT must not be empty")
	}
	if c.OCREnabled && c.OCRLang == "" {
		return fmt.Errorf("TESISCAN_OCR_LANG is required when OCR is enabled")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
