package records

import "strings"

// NormalizeKey derives a record field name from header text: trimmed,
// lower-cased, with internal whitespace runs collapsed to a single "-".
// Normalization is idempotent: "  First Name  " and "first-name" both
// yield "first-name".
func NormalizeKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), "-"))
}
