package records

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"rowbook/internal/workbook"
)

// Record is one data row materialized as a mapping from normalized
// header key to resolved value. Records are snapshots with no reference
// back to the source cells.
type Record map[string]Value

// DefaultHeaderRow is the 1-based position of the header row when none
// is given.
const DefaultHeaderRow = 1

// ReadSheet materializes the named sheet into records. The row at
// headerRow (1-based) supplies the field names and the column count;
// every following row becomes one record with exactly that field count,
// short rows padded with blanks and long rows truncated.
//
// Duplicate normalized header keys are not deduplicated: the later
// column's value overwrites the earlier one. This is the documented
// collision policy, not an accident of map assignment order.
func ReadSheet(wb workbook.Workbook, sheetName string, headerRow int) ([]Record, error) {
	sheet := wb.Sheet(sheetName)
	if sheet == nil {
		return nil, &SheetNotFoundError{Name: sheetName}
	}

	if headerRow < 1 {
		headerRow = DefaultHeaderRow
	}

	rows := sheet.Rows()
	if len(rows) < headerRow {
		log.Debug().
			Str("sheet_name", sheetName).
			Int("header_row", headerRow).
			Int("row_count", len(rows)).
			Msg("Sheet has no header row")
		return nil, nil
	}

	header := rows[headerRow-1]
	columnCount := header.LastCellIndex() + 1

	keys := make([]string, columnCount)
	for i, value := range ReadRow(header, columnCount) {
		keys[i] = NormalizeKey(stringify(value))
	}

	dataRows := rows[headerRow:]
	out := make([]Record, 0, len(dataRows))
	for _, row := range dataRows {
		values := ReadRow(row, columnCount)
		record := make(Record, columnCount)
		for i, key := range keys {
			record[key] = values[i]
		}
		out = append(out, record)
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Int("column_count", columnCount).
		Int("record_count", len(out)).
		Msg("Materialized sheet records")

	return out, nil
}

// ListSheets returns the workbook's sheet names in file-declared order.
func ListSheets(wb workbook.Workbook) []string {
	return wb.SheetNames()
}

// SheetHeaders returns the raw, pre-normalization header strings of the
// named sheet's first row.
func SheetHeaders(wb workbook.Workbook, sheetName string) ([]string, error) {
	sheet := wb.Sheet(sheetName)
	if sheet == nil {
		return nil, &SheetNotFoundError{Name: sheetName}
	}

	rows := sheet.Rows()
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	columnCount := header.LastCellIndex() + 1

	headers := make([]string, columnCount)
	for i, value := range ReadRow(header, columnCount) {
		headers[i] = stringify(value)
	}
	return headers, nil
}

// stringify renders a resolved value as header text.
func stringify(v Value) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
