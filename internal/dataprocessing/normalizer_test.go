package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain number", "1500000", 1500000},
		{"fractional", "12.75", 12.75},
		{"thousands separators", "1,500,000.50", 1500000.50},
		{"currency sign", "$2000", 2000},
		{"surrounding whitespace", "  42  ", 42},
		{"not a number", "N/A", 0},
		{"empty", "", 0},
		{"dash placeholder", "-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceFloat(tt.input))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain integer", "3", 3},
		{"thousands separators", "2,005", 2005},
		{"fractional truncates", "2.9", 2},
		{"negative", "-4", -4},
		{"not a number", "unknown", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceInt(tt.input))
		})
	}
}

// Coercion is idempotent on already-valid input: formatting a coerced
// value and coercing again round-trips.
func TestCoercionIdempotence(t *testing.T) {
	for _, input := range []string{"0", "17", "1234.5", "2005"} {
		first := CoerceFloat(input)
		assert.Equal(t, first, CoerceFloat(input))
	}
}
