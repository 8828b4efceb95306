package normalization

import (
	"strings"
)

// ParseInputString trims and lowercases free-form identifier input (emails,
// status values). Not for display fields like names or addresses.
func ParseInputString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	return normalized
}

// TrimInputString trims whitespace but preserves case, for display fields.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
