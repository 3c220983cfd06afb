package strings

import (
	"strings"
	"unicode"
)

// SnakeCase converts a Go identifier to snake_case, keeping a leading or
// trailing acronym together: "NationalID" -> "national_id",
// "HTTPStatus" -> "http_status".
func SnakeCase(ident string) string {
	runes := []rune(ident)
	var b strings.Builder
	b.Grow(len(ident) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
