// Package cpf parses, formats and validates Brazilian individual taxpayer
// numbers (CPF), the national identifier used as the candidate lookup key.
//
// A CPF has 11 digits. The last two are check digits derived from the
// preceding nine (and ten) digits with fixed positional weights mod 11.
// The canonical display layout is XXX.XXX.XXX-XX.
//
// Functions in this package never fail: malformed input yields an empty or
// partial result, or false from the predicates. Use Parse at trust
// boundaries when a validated value object is needed.
package cpf

import (
	"strings"

	dErrors "concursos/pkg/domain-errors"
)

// Length is the number of digits in a CPF.
const Length = 11

// allowList holds identities that are always accepted without running the
// checksum. They are the bundled seed candidates, whose numbers do not carry
// valid check digits.
var allowList = map[string]struct{}{
	"18284508434": {},
	"31166797347": {},
	"56551235392": {},
}

// ErrInvalidCPF indicates a value failed CPF validation.
var ErrInvalidCPF = dErrors.New(dErrors.CodeInvalidInput, "invalid CPF")

// CPF is a validated national identifier stored as its 11 bare digits.
type CPF struct {
	digits string
}

// Parse validates raw and returns the CPF value object.
// Returns ErrInvalidCPF if IsValid(raw) is false.
func Parse(raw string) (CPF, error) {
	if !IsValid(raw) {
		return CPF{}, ErrInvalidCPF
	}
	return CPF{digits: Clean(raw)}, nil
}

// MustParse creates a CPF, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(raw string) CPF {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the 11 bare digits.
func (c CPF) String() string {
	return c.digits
}

// Formatted returns the canonical XXX.XXX.XXX-XX layout.
func (c CPF) Formatted() string {
	return Format(c.digits)
}

// IsZero returns true if this is the zero value (uninitialized).
func (c CPF) IsZero() bool {
	return c.digits == ""
}

// Clean strips every character that is not an ASCII digit.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Key identifies raw for deduplication: its digits, or the trimmed raw value
// when it has none, so "182.845.084-34" and "18284508434" share a key while
// malformed entries stay distinct.
func Key(raw string) string {
	if digits := Clean(raw); digits != "" {
		return digits
	}
	return strings.TrimSpace(raw)
}

// Format cleans raw and lays the digits out as XXX.XXX.XXX-XX.
// Shorter input is laid out progressively ("1234" -> "123.4") and never ends
// in a separator. Input with more than 11 digits is returned as bare digits.
func Format(raw string) string {
	return layout(Clean(raw))
}

// Mask applies the display layout to partially typed input. It is idempotent
// on its own output and keeps every digit, so Clean(Mask(s)) == Clean(s).
func Mask(raw string) string {
	return layout(Clean(raw))
}

func layout(digits string) string {
	if len(digits) > Length {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + 3)
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// IsValid reports whether raw is an acceptable CPF: 11 digits, not a single
// repeated digit, and either allow-listed or carrying both check digits.
func IsValid(raw string) bool {
	digits := Clean(raw)
	if !wellFormed(digits) {
		return false
	}
	if _, ok := allowList[digits]; ok {
		return true
	}
	return checksumMatches(digits)
}

// ValidChecksum applies the length, repeated-digit and check-digit rules
// without consulting the allow-list.
func ValidChecksum(raw string) bool {
	digits := Clean(raw)
	return wellFormed(digits) && checksumMatches(digits)
}

// wellFormed rejects wrong lengths and the degenerate 000..0 - 999..9 sequences.
func wellFormed(digits string) bool {
	if len(digits) != Length {
		return false
	}
	return strings.Count(digits, digits[:1]) != Length
}

func checksumMatches(digits string) bool {
	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit weighs the first n digits from n+1 down to 2 and reduces the sum
// mod 11; results of 10 or 11 collapse to 0.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := 11 - sum%11
	if d >= 10 {
		d = 0
	}
	return d
}

// Redact returns a log-safe form of raw that keeps only the last 4 digits.
func Redact(raw string) string {
	digits := Clean(raw)
	if len(digits) <= 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}
