package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"rowbook/internal/app"
	"rowbook/internal/records"
	"rowbook/internal/workbook"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	file := flag.String("file", "", "Path to an XLSX workbook")
	spreadsheetID := flag.String("spreadsheet-id", "", "Google spreadsheet ID (remote workbook)")
	sheet := flag.String("sheet", "", "Sheet name (defaults to the first sheet)")
	headerRow := flag.Int("header-row", 0, "1-based header row position")
	list := flag.Bool("list", false, "List sheet names and exit")
	headers := flag.Bool("headers", false, "Print the raw header row and exit")
	flag.Parse()

	// Load configuration; flags override env-sourced values
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *file != "" {
		config.WorkbookPath = *file
	}
	if *spreadsheetID != "" {
		config.SpreadsheetID = *spreadsheetID
	}
	if *sheet != "" {
		config.SheetName = *sheet
	}
	if *headerRow > 0 {
		config.HeaderRow = *headerRow
	}

	wb, err := openWorkbook(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open workbook")
	}
	defer func() {
		if err := wb.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	names := records.ListSheets(wb)
	if *list {
		printJSON(names)
		return
	}

	if config.SheetName == "" {
		if len(names) == 0 {
			log.Fatal().Msg("Workbook has no sheets")
		}
		config.SheetName = names[0]
	}

	if *headers {
		rawHeaders, err := records.SheetHeaders(wb, config.SheetName)
		if err != nil {
			log.Fatal().Err(err).Str("sheet_name", config.SheetName).Msg("Failed to read sheet headers")
		}
		printJSON(rawHeaders)
		return
	}

	recs, err := records.ReadSheet(wb, config.SheetName, config.HeaderRow)
	if err != nil {
		log.Fatal().Err(err).Str("sheet_name", config.SheetName).Msg("Failed to read sheet")
	}

	log.Info().
		Str("sheet_name", config.SheetName).
		Int("record_count", len(recs)).
		Msg("Read sheet records")

	printJSON(recs)
}

// openWorkbook opens either the local XLSX file or the remote
// spreadsheet, depending on configuration.
func openWorkbook(config *app.Config) (workbook.Workbook, error) {
	if config.SpreadsheetID != "" {
		return workbook.OpenRemote(context.Background(), config.SpreadsheetID, config.CredentialsFile)
	}
	if config.WorkbookPath == "" {
		log.Fatal().Msg("Either -file or -spreadsheet-id is required")
	}
	return workbook.Open(config.WorkbookPath)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
}
