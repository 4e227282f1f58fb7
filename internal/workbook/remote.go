package workbook

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SpreadsheetAPI is the slice of the Google Sheets API the remote
// workbook adapter needs. Production code uses the sheets/v4 service;
// tests provide a stub.
type SpreadsheetAPI interface {
	SheetTitles(ctx context.Context) ([]string, error)
	// SheetValues returns all values of the named sheet as the raw
	// [][]interface{} the values API mandates.
	SheetValues(ctx context.Context, title string) ([][]interface{}, error)
}

// RemoteWorkbook is a read-only Workbook over a Google spreadsheet.
// Sheet titles are fetched once at open; sheet values are fetched on
// first access to each sheet.
type RemoteWorkbook struct {
	ctx    context.Context
	api    SpreadsheetAPI
	titles []string
	sheets map[string]*MemSheet
}

// OpenRemote opens a Google spreadsheet by ID using the provided
// service-account credentials file.
func OpenRemote(ctx context.Context, spreadsheetID, credentialsFile string) (*RemoteWorkbook, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return NewRemoteWorkbook(ctx, &sheetsAPI{service: service, spreadsheetID: spreadsheetID})
}

// NewRemoteWorkbook builds a remote workbook over the given API.
func NewRemoteWorkbook(ctx context.Context, api SpreadsheetAPI) (*RemoteWorkbook, error) {
	titles, err := api.SheetTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	log.Debug().
		Int("sheet_count", len(titles)).
		Msg("Opened remote workbook")

	return &RemoteWorkbook{
		ctx:    ctx,
		api:    api,
		titles: titles,
		sheets: make(map[string]*MemSheet),
	}, nil
}

func (wb *RemoteWorkbook) SheetNames() []string {
	names := make([]string, len(wb.titles))
	copy(names, wb.titles)
	return names
}

func (wb *RemoteWorkbook) Sheet(name string) Sheet {
	if s, ok := wb.sheets[name]; ok {
		return s
	}

	found := false
	for _, title := range wb.titles {
		if title == name {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	values, err := wb.api.SheetValues(wb.ctx, name)
	if err != nil {
		log.Warn().
			Str("sheet_name", name).
			Err(err).
			Msg("Failed to fetch remote sheet values")
		return nil
	}

	rows := make([]Row, len(values))
	for r, vals := range values {
		cells := make([]Cell, len(vals))
		for c, val := range vals {
			cells[c] = remoteCell{raw: val}
		}
		rows[r] = &MemRow{cells: cells}
	}

	s := &MemSheet{name: name, rows: rows}
	wb.sheets[name] = s
	return s
}

func (wb *RemoteWorkbook) Close() error { return nil }

// sheetsAPI implements SpreadsheetAPI against the real sheets/v4 service.
type sheetsAPI struct {
	service       *sheets.Service
	spreadsheetID string
}

func (a *sheetsAPI) SheetTitles(ctx context.Context) ([]string, error) {
	spreadsheet, err := a.service.Spreadsheets.Get(a.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (a *sheetsAPI) SheetValues(ctx context.Context, title string) ([][]interface{}, error) {
	rangeSpec := fmt.Sprintf("'%s'", title)
	resp, err := a.service.Spreadsheets.Values.Get(a.spreadsheetID, rangeSpec).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}

	return resp.Values, nil
}

// knownErrorValues are the spreadsheet error literals the values API
// reports as plain strings.
var knownErrorValues = map[string]bool{
	"#DIV/0!": true,
	"#N/A":    true,
	"#NAME?":  true,
	"#NULL!":  true,
	"#NUM!":   true,
	"#REF!":   true,
	"#VALUE!": true,
}

// remoteCell classifies the JSON value types the values API returns.
// The remote surface never exposes formula cells; formulas arrive as
// their computed values.
type remoteCell struct {
	raw interface{}
}

func (c remoteCell) Kind() Kind {
	switch v := c.raw.(type) {
	case nil:
		return KindBlank
	case string:
		if v == "" {
			return KindBlank
		}
		if knownErrorValues[v] {
			return KindError
		}
		return KindString
	case float64:
		return KindNumeric
	case bool:
		return KindBool
	default:
		return KindUnknown
	}
}

func (c remoteCell) String() string {
	if s, ok := c.raw.(string); ok {
		return s
	}
	return ""
}

func (c remoteCell) Number() float64 {
	if f, ok := c.raw.(float64); ok {
		return f
	}
	return 0
}

func (c remoteCell) Bool() bool {
	if b, ok := c.raw.(bool); ok {
		return b
	}
	return false
}

func (c remoteCell) FormulaText() string { return "" }
func (c remoteCell) CachedKind() Kind    { return KindBlank }
