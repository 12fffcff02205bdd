package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	PageSize        int    // records per table page
	TopK            int    // named slices per summary chart
	OtherLabel      string // label of the bucket collecting the remaining slices
	FetchLimit      int    // upper bound of records each fetch returns
	SpreadsheetID   string // optional; publishing is disabled when empty
	CredentialsFile string
}

// Defaults applied when the environment leaves a setting unset
const (
	DefaultPageSize   = 10
	DefaultTopK       = 5
	DefaultOtherLabel = "Other"
	DefaultFetchLimit = 50
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	pageSize, err := positiveIntEnv("PAGE_SIZE", DefaultPageSize)
	if err != nil {
		return nil, err
	}

	topK, err := positiveIntEnv("TOP_K", DefaultTopK)
	if err != nil {
		return nil, err
	}

	fetchLimit, err := positiveIntEnv("FETCH_LIMIT", DefaultFetchLimit)
	if err != nil {
		return nil, err
	}

	otherLabel := os.Getenv("OTHER_LABEL")
	if otherLabel == "" {
		otherLabel = DefaultOtherLabel
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = "credentials.json"
	}

	return &Config{
		PageSize:        pageSize,
		TopK:            topK,
		OtherLabel:      otherLabel,
		FetchLimit:      fetchLimit,
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: credentialsFile,
	}, nil
}

// PublishingEnabled reports whether results should be written to Google Sheets
func (c *Config) PublishingEnabled() bool {
	return c.SpreadsheetID != ""
}

// positiveIntEnv reads a positive integer, falling back to def when unset
func positiveIntEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, value)
	}
	return value, nil
}
