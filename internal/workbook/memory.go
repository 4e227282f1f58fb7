package workbook

// In-memory workbook implementation. Used by tests and by embedders that
// already hold tabular data and want to run it through the record reader
// without a real container file.

// MemCell is a Cell held directly in memory.
type MemCell struct {
	kind    Kind
	str     string
	num     float64
	boolean bool

	formula    string
	cachedKind Kind
	cached     *MemCell
}

// StringCell returns a string cell.
func StringCell(s string) *MemCell {
	return &MemCell{kind: KindString, str: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) *MemCell {
	return &MemCell{kind: KindNumeric, num: v}
}

// BoolCell returns a boolean cell.
func BoolCell(b bool) *MemCell {
	return &MemCell{kind: KindBool, boolean: b}
}

// BlankCell returns a blank cell.
func BlankCell() *MemCell {
	return &MemCell{kind: KindBlank}
}

// ErrorCell returns an error cell.
func ErrorCell() *MemCell {
	return &MemCell{kind: KindError}
}

// FormulaCell returns a formula cell whose cached result is the given
// cell. The formula source is stored without the leading "=".
func FormulaCell(source string, cached *MemCell) *MemCell {
	ck := KindBlank
	if cached != nil {
		ck = cached.kind
	}
	return &MemCell{kind: KindFormula, formula: source, cachedKind: ck, cached: cached}
}

// UnevaluatedFormulaCell returns the degenerate formula cell whose cached
// result kind is itself reported as formula.
func UnevaluatedFormulaCell(source string) *MemCell {
	return &MemCell{kind: KindFormula, formula: source, cachedKind: KindFormula}
}

// UnknownCell returns a cell of unrecognized kind.
func UnknownCell() *MemCell {
	return &MemCell{kind: KindUnknown}
}

func (c *MemCell) Kind() Kind { return c.kind }

func (c *MemCell) String() string {
	if c.kind == KindFormula && c.cached != nil {
		return c.cached.String()
	}
	return c.str
}

func (c *MemCell) Number() float64 {
	if c.kind == KindFormula && c.cached != nil {
		return c.cached.Number()
	}
	return c.num
}

func (c *MemCell) Bool() bool {
	if c.kind == KindFormula && c.cached != nil {
		return c.cached.Bool()
	}
	return c.boolean
}

func (c *MemCell) FormulaText() string { return c.formula }
func (c *MemCell) CachedKind() Kind    { return c.cachedKind }

// MemRow is a Row backed by a slice of cells; nil entries model
// never-populated positions.
type MemRow struct {
	cells []Cell
}

// NewRow builds a row from the given cells in order.
func NewRow(cells ...Cell) *MemRow {
	return &MemRow{cells: cells}
}

func (r *MemRow) Cell(index int) Cell {
	if index < 0 || index >= len(r.cells) {
		return nil
	}
	return r.cells[index]
}

func (r *MemRow) LastCellIndex() int {
	for i := len(r.cells) - 1; i >= 0; i-- {
		if r.cells[i] != nil {
			return i
		}
	}
	return -1
}

// MemSheet is a named, in-memory sequence of rows.
type MemSheet struct {
	name string
	rows []Row
}

// NewSheet builds a sheet from the given rows in order.
func NewSheet(name string, rows ...Row) *MemSheet {
	return &MemSheet{name: name, rows: rows}
}

func (s *MemSheet) Name() string { return s.name }
func (s *MemSheet) Rows() []Row  { return s.rows }

// MemWorkbook is a Workbook held entirely in memory.
type MemWorkbook struct {
	order  []string
	sheets map[string]*MemSheet
}

// NewWorkbook builds a workbook from the given sheets; declaration order
// becomes the sheet order.
func NewWorkbook(sheets ...*MemSheet) *MemWorkbook {
	wb := &MemWorkbook{sheets: make(map[string]*MemSheet, len(sheets))}
	for _, s := range sheets {
		wb.order = append(wb.order, s.name)
		wb.sheets[s.name] = s
	}
	return wb
}

func (wb *MemWorkbook) SheetNames() []string {
	names := make([]string, len(wb.order))
	copy(names, wb.order)
	return names
}

func (wb *MemWorkbook) Sheet(name string) Sheet {
	s, ok := wb.sheets[name]
	if !ok {
		return nil
	}
	return s
}

func (wb *MemWorkbook) Close() error { return nil }
