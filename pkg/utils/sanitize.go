package utils

import "strings"

// Sanitize trims surrounding whitespace and removes angle brackets from
// user-supplied strings before they are bound into a query. This is a
// markup-character strip, not HTML escaping; injection safety comes from
// parameterized queries.
func Sanitize(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.NewReplacer("<", "", ">", "").Replace(trimmed)
}
