// Package textmatch compares profession labels ignoring case, surrounding
// whitespace and diacritical marks, so "Técnico" and " TECNICO" are equal.
package textmatch

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isCombiningDiacritic matches the Combining Diacritical Marks block
// (U+0300-U+036F). Other nonspacing marks, such as Hebrew points, are kept.
func isCombiningDiacritic(r rune) bool {
	return r >= '\u0300' && r <= '\u036f'
}

// stripAccents builds a fresh chain per call: transform.Chain keeps internal
// buffers and is not safe for concurrent use.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningDiacritic)), norm.NFC)
}

// Normalize lowercases, trims and strips combining diacritical marks from s.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripAccents(), s)
	if err != nil {
		return s
	}
	return out
}

func normalizedSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[Normalize(l)] = struct{}{}
	}
	return set
}

// HasIntersection reports whether some element of a equals some element of b
// after normalization. Empty inputs never intersect.
func HasIntersection(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := normalizedSet(b)
	for _, l := range a {
		if _, ok := set[Normalize(l)]; ok {
			return true
		}
	}
	return false
}

// Intersection returns the elements of a, in order and with their original
// spelling, that have a normalized match in b. Near-duplicates in a are each
// kept. The result is never nil.
func Intersection(a, b []string) []string {
	out := make([]string, 0, len(a))
	if len(a) == 0 || len(b) == 0 {
		return out
	}
	set := normalizedSet(b)
	for _, l := range a {
		if _, ok := set[Normalize(l)]; ok {
			out = append(out, l)
		}
	}
	return out
}
