package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// XLSXWorkbook adapts an excelize file to the Workbook interface.
//
// Note: excelize reports cell content as strings and a container-level
// cell type. This adapter is the only layer that touches that surface;
// everything above it works with Kind-tagged cells.
type XLSXWorkbook struct {
	f *excelize.File
}

// Open opens an XLSX container at the given path. The returned workbook
// must be closed by the caller after use.
func Open(path string) (*XLSXWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("sheet_count", f.SheetCount).
		Msg("Opened workbook")

	return &XLSXWorkbook{f: f}, nil
}

func (wb *XLSXWorkbook) SheetNames() []string {
	return wb.f.GetSheetList()
}

func (wb *XLSXWorkbook) Sheet(name string) Sheet {
	idx, err := wb.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil
	}

	raw, err := wb.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		log.Warn().
			Str("sheet_name", name).
			Err(err).
			Msg("Failed to read sheet rows")
		return nil
	}

	rows := make([]Row, len(raw))
	for r, vals := range raw {
		cells := make([]Cell, len(vals))
		for c, val := range vals {
			cells[c] = &xlsxCell{f: wb.f, sheet: name, row: r + 1, col: c + 1, raw: val}
		}
		rows[r] = &xlsxRow{cells: cells}
	}

	return &MemSheet{name: name, rows: rows}
}

func (wb *XLSXWorkbook) Close() error {
	return wb.f.Close()
}

type xlsxRow struct {
	cells []Cell
}

func (r *xlsxRow) Cell(index int) Cell {
	if index < 0 || index >= len(r.cells) {
		return nil
	}
	return r.cells[index]
}

func (r *xlsxRow) LastCellIndex() int {
	// excelize omits trailing never-populated cells, so the slice end is
	// the last populated position.
	return len(r.cells) - 1
}

// xlsxCell resolves its kind lazily against the excelize file, since the
// row iteration API only yields stringified values.
type xlsxCell struct {
	f     *excelize.File
	sheet string
	row   int
	col   int
	raw   string
}

func (c *xlsxCell) ref() string {
	name, _ := excelize.CoordinatesToCellName(c.col, c.row)
	return name
}

func (c *xlsxCell) Kind() Kind {
	if formula, err := c.f.GetCellFormula(c.sheet, c.ref()); err == nil && formula != "" {
		return KindFormula
	}
	return c.storedKind()
}

// storedKind classifies the cell's stored value, ignoring any formula.
func (c *xlsxCell) storedKind() Kind {
	ct, err := c.f.GetCellType(c.sheet, c.ref())
	if err != nil {
		return KindUnknown
	}

	switch ct {
	case excelize.CellTypeBool:
		return KindBool
	case excelize.CellTypeError:
		return KindError
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return KindString
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		// Date cells carry a numeric serial; typed dates are not supported.
		return KindNumeric
	default:
		// Numeric cells usually omit the type attribute in the container.
		if c.raw == "" {
			return KindBlank
		}
		if _, err := strconv.ParseFloat(c.raw, 64); err == nil {
			return KindNumeric
		}
		return KindString
	}
}

func (c *xlsxCell) String() string {
	return c.raw
}

func (c *xlsxCell) Number() float64 {
	v, err := strconv.ParseFloat(c.raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func (c *xlsxCell) Bool() bool {
	return c.raw == "1" || strings.EqualFold(c.raw, "true")
}

func (c *xlsxCell) FormulaText() string {
	formula, err := c.f.GetCellFormula(c.sheet, c.ref())
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(formula, "=")
}

func (c *xlsxCell) CachedKind() Kind {
	// The cached result is the stored value left behind by the authoring
	// application, classified the same way as a plain cell.
	return c.storedKind()
}
