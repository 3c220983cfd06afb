// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates from a slice, trimming whitespace from
// each element. Order is preserved. Blank elements are kept, collapsed to a
// single "", so callers can still answer them.
//
// Example:
//
//	DedupeAndTrim([]string{"  61828450843 ", "95655123539", "61828450843", "", "  "})
//	// Returns: []string{"61828450843", "95655123539", ""}
func DedupeAndTrim(values []string) []string {
	return dedupe(values, strings.TrimSpace)
}

// DedupeBy is like DedupeAndTrim but compares elements by key(v) after
// trimming, keeping the first original element of each key.
//
// Example:
//
//	DedupeBy([]string{"182.845.084-34", "18284508434"}, cpf.Clean)
//	// Returns: []string{"182.845.084-34"}
func DedupeBy(values []string, key func(string) string) []string {
	return dedupe(values, func(v string) string { return key(strings.TrimSpace(v)) })
}

func dedupe(values []string, key func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		k := key(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, strings.TrimSpace(v))
		}
	}

	return result
}
