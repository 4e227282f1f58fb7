// Package records turns workbook sheets into structured records: the
// header row supplies normalized field names, and every following row
// becomes one field-to-value mapping. Cell resolution is total — every
// cell kind maps to exactly one value and never to an error.
package records

import (
	"math"

	"rowbook/internal/workbook"
)

// ErrorMarker is the value an error cell resolves to. The original error
// code is not preserved.
const ErrorMarker = "#ERROR"

// Value is one resolved cell value: string, int64, float64 or bool.
// Blank and unrecognized cells resolve to the empty string so consumers
// never see an absent value.
type Value interface{}

// Resolve maps a cell to its one resolved value, dispatching on the
// declared kind. A nil cell is treated as blank.
func Resolve(cell workbook.Cell) Value {
	if cell == nil {
		return ""
	}
	return resolveAs(cell, cell.Kind())
}

func resolveAs(cell workbook.Cell, kind workbook.Kind) Value {
	switch kind {
	case workbook.KindString:
		return cell.String()
	case workbook.KindNumeric:
		return normalizeNumber(cell.Number())
	case workbook.KindBool:
		return cell.Bool()
	case workbook.KindBlank:
		return ""
	case workbook.KindError:
		return ErrorMarker
	case workbook.KindFormula:
		cached := cell.CachedKind()
		if cached == workbook.KindFormula {
			// Degenerate unevaluated formula: surface the source text.
			return "=" + cell.FormulaText()
		}
		return resolveAs(cell, cached)
	default:
		return ""
	}
}

// normalizeNumber returns whole numbers as int64 and true fractional
// values as float64 unchanged. Spreadsheet numerics do not distinguish
// 42 from 42.0; returning integers avoids spurious decimal points
// downstream. Values outside the int64 range stay float64 so the
// conversion is loss-free.
func normalizeNumber(v float64) Value {
	if v-math.Floor(v) == 0 && v >= math.MinInt64 && v < math.MaxInt64 {
		return int64(math.Floor(v))
	}
	return v
}
