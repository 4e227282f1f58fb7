package app

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfig(t *testing.T) {
	// Save original environment
	originalWorkbookPath := os.Getenv("WORKBOOK_PATH")
	originalSpreadsheetID := os.Getenv("SPREADSHEET_ID")
	originalCredentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	originalSheetName := os.Getenv("SHEET_NAME")
	originalHeaderRow := os.Getenv("HEADER_ROW")

	// Cleanup function
	defer func() {
		setOrUnset("WORKBOOK_PATH", originalWorkbookPath)
		setOrUnset("SPREADSHEET_ID", originalSpreadsheetID)
		setOrUnset("GOOGLE_CREDENTIALS_FILE", originalCredentialsFile)
		setOrUnset("SHEET_NAME", originalSheetName)
		setOrUnset("HEADER_ROW", originalHeaderRow)
	}()

	t.Run("ValidConfiguration", func(t *testing.T) {
		os.Setenv("WORKBOOK_PATH", "test_workbook.xlsx")
		os.Setenv("SPREADSHEET_ID", "test_spreadsheet_id")
		os.Setenv("GOOGLE_CREDENTIALS_FILE", "test_credentials.json")
		os.Setenv("SHEET_NAME", "Sheet1")
		os.Setenv("HEADER_ROW", "3")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.WorkbookPath != "test_workbook.xlsx" {
			t.Errorf("Expected WorkbookPath to be 'test_workbook.xlsx', got '%s'", config.WorkbookPath)
		}

		if config.SpreadsheetID != "test_spreadsheet_id" {
			t.Errorf("Expected SpreadsheetID to be 'test_spreadsheet_id', got '%s'", config.SpreadsheetID)
		}

		if config.CredentialsFile != "test_credentials.json" {
			t.Errorf("Expected CredentialsFile to be 'test_credentials.json', got '%s'", config.CredentialsFile)
		}

		if config.SheetName != "Sheet1" {
			t.Errorf("Expected SheetName to be 'Sheet1', got '%s'", config.SheetName)
		}

		if config.HeaderRow != 3 {
			t.Errorf("Expected HeaderRow to be 3, got %d", config.HeaderRow)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		os.Unsetenv("WORKBOOK_PATH")
		os.Unsetenv("SPREADSHEET_ID")
		os.Unsetenv("GOOGLE_CREDENTIALS_FILE")
		os.Unsetenv("SHEET_NAME")
		os.Unsetenv("HEADER_ROW")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.CredentialsFile != "credentials.json" {
			t.Errorf("Expected CredentialsFile to default to 'credentials.json', got '%s'", config.CredentialsFile)
		}

		if config.HeaderRow != 1 {
			t.Errorf("Expected HeaderRow to default to 1, got %d", config.HeaderRow)
		}
	})

	t.Run("InvalidHeaderRow", func(t *testing.T) {
		os.Setenv("HEADER_ROW", "zero")

		_, err := LoadConfig()

		if err == nil {
			t.Fatal("Expected error for non-numeric HEADER_ROW, got nil")
		}

		if !strings.Contains(err.Error(), "HEADER_ROW") {
			t.Errorf("Expected error message to contain 'HEADER_ROW', got '%s'", err.Error())
		}
	})

	t.Run("NonPositiveHeaderRow", func(t *testing.T) {
		os.Setenv("HEADER_ROW", "0")

		_, err := LoadConfig()

		if err == nil {
			t.Fatal("Expected error for HEADER_ROW of 0, got nil")
		}
	})
}

func TestSetupEnvironment(t *testing.T) {
	// Save original environment
	originalENV := os.Getenv("ENV")
	originalLOGLEVEL := os.Getenv("LOGLEVEL")
	originalLevel := zerolog.GlobalLevel()

	// Cleanup function
	defer func() {
		setOrUnset("ENV", originalENV)
		setOrUnset("LOGLEVEL", originalLOGLEVEL)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	testCases := []struct {
		name          string
		env           string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"ProductionDebug", "production", "debug", zerolog.DebugLevel},
		{"ProductionInfo", "production", "info", zerolog.InfoLevel},
		{"ProductionWarn", "production", "warn", zerolog.WarnLevel},
		{"ProductionWarning", "production", "warning", zerolog.WarnLevel},
		{"ProductionError", "production", "error", zerolog.ErrorLevel},
		{"ProductionFatal", "production", "fatal", zerolog.FatalLevel},
		{"ProductionPanic", "production", "panic", zerolog.PanicLevel},
		{"ProductionDisabled", "production", "disabled", zerolog.Disabled},
		{"ProductionDefault", "production", "", zerolog.WarnLevel},
		{"ProductionUnknown", "production", "unknown", zerolog.InfoLevel},
		{"DevelopmentDebug", "development", "debug", zerolog.DebugLevel},
		{"DevelopmentDefault", "development", "", zerolog.InfoLevel},
		{"DevelopmentUnknown", "", "unknown", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setOrUnset("ENV", tc.env)
			setOrUnset("LOGLEVEL", tc.logLevel)

			SetupEnvironment()

			if zerolog.GlobalLevel() != tc.expectedLevel {
				t.Errorf("Expected log level %v, got %v", tc.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}

// setOrUnset sets an environment variable or unsets it if the value is empty
func setOrUnset(key, value string) {
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}
