package records

import "rowbook/internal/workbook"

// ReadRow resolves the cells at positions 0..columnCount-1 of the row
// and returns exactly columnCount values. Absent cells resolve to blank
// rather than being skipped, so value i always corresponds to column i.
func ReadRow(row workbook.Row, columnCount int) []Value {
	out := make([]Value, 0, columnCount)
	for i := 0; i < columnCount; i++ {
		if row == nil {
			out = append(out, "")
			continue
		}
		out = append(out, Resolve(row.Cell(i)))
	}
	return out
}
