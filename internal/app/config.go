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

// Config holds application configuration. CLI flags override these
// env-sourced defaults.
type Config struct {
	// WorkbookPath is the XLSX file to read.
	WorkbookPath string
	// SpreadsheetID selects a remote Google spreadsheet instead of a
	// local file. Mutually exclusive with WorkbookPath.
	SpreadsheetID string
	// CredentialsFile is the service-account credentials file for
	// remote spreadsheets.
	CredentialsFile string
	// SheetName is the sheet to materialize; empty means the first
	// sheet in the workbook.
	SheetName string
	// HeaderRow is the 1-based header row position.
	HeaderRow int
}

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

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		WorkbookPath:  os.Getenv("WORKBOOK_PATH"),
		SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		SheetName:     os.Getenv("SHEET_NAME"),
		HeaderRow:     1,
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = "credentials.json"
	}
	config.CredentialsFile = credentialsFile

	if headerRow := os.Getenv("HEADER_ROW"); headerRow != "" {
		n, err := strconv.Atoi(headerRow)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("HEADER_ROW must be a positive integer, got %q", headerRow)
		}
		config.HeaderRow = n
	}

	return config, nil
}
