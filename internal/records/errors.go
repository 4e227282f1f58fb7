package records

import "fmt"

// SheetNotFoundError indicates the requested sheet name is absent from
// the workbook.
type SheetNotFoundError struct {
	Name string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Name)
}
