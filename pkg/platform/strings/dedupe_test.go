package strings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil stays nil", nil, nil},
		{"keeps first occurrence order", []string{" b ", "a", "b"}, []string{"b", "a"}},
		{"collapses blanks to one", []string{"", "  ", "x"}, []string{"", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.in))
		})
	}
}

func TestDedupeBy(t *testing.T) {
	digits := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, s)
	}

	got := DedupeBy([]string{" 182.845.084-34", "18284508434", "abc", "311.667.973-47", "-"}, digits)
	assert.Equal(t, []string{"182.845.084-34", "abc", "311.667.973-47"}, got, "keys without digits collapse to one")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "code", SnakeCase("Code"))
	assert.Equal(t, "national_id", SnakeCase("NationalID"))
	assert.Equal(t, "http_status", SnakeCase("HTTPStatus"))
	assert.Equal(t, "birth_date", SnakeCase("BirthDate"))
}
