// Package workbook defines the container capability surface the record
// reader depends on: an open Workbook of named Sheets, each an ordered
// sequence of Rows of typed Cells. Three implementations are provided:
// an excelize-backed XLSX adapter, a read-only Google Sheets adapter,
// and an in-memory workbook for tests and embedders.
package workbook

// Kind is the declared content category of a cell.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumeric
	KindBool
	KindBlank
	KindError
	KindFormula
)

// String returns a human-readable name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	case KindBlank:
		return "blank"
	case KindError:
		return "error"
	case KindFormula:
		return "formula"
	default:
		return "unknown"
	}
}

// Cell provides typed access to one cell. Accessors other than Kind are
// valid only when the kind matches: String for KindString, Number for
// KindNumeric, Bool for KindBool, FormulaText and CachedKind for
// KindFormula. Implementations return zero values otherwise.
type Cell interface {
	Kind() Kind
	String() string
	Number() float64
	Bool() bool

	// FormulaText returns the formula source without the leading "=".
	FormulaText() string
	// CachedKind reports the kind of the value last computed for a
	// formula cell by the authoring application.
	CachedKind() Kind
}

// Row is an ordered sequence of cells indexed from 0.
type Row interface {
	// Cell returns the cell at the given index, or nil if the position
	// was never populated.
	Cell(index int) Cell
	// LastCellIndex returns the index of the last populated cell, or -1
	// for a row with no cells.
	LastCellIndex() int
}

// Sheet is a finite, position-addressable sequence of rows.
type Sheet interface {
	Name() string
	Rows() []Row
}

// Workbook is an open container of sheets. It is immutable once opened
// and owned by the caller; Close releases the underlying container.
// Concurrent use of one Workbook must be serialized by the caller.
type Workbook interface {
	// SheetNames returns sheet names in file-declared order.
	SheetNames() []string
	// Sheet returns the named sheet, or nil if no sheet has that name.
	Sheet(name string) Sheet
	Close() error
}
