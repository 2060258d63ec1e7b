package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Samsung", "samsung"},
		{"Trims surrounding whitespace", "  Samsung  ", "samsung"},
		{"Folds inner whitespace", "Galaxy   A52\t5G", "galaxy a52 5g"},
		{"Already normal", "galaxy a52", "galaxy a52"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_CollisionPairs(t *testing.T) {
	// Pairs that must collide for the uniqueness checks to catch them
	assert.Equal(t, NormalizeName("Samsung"), NormalizeName("  samsung "))
	assert.Equal(t, NormalizeName("Galaxy A52"), NormalizeName("GALAXY   a52"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple", "Galaxy A52", "galaxy-a52"},
		{"Punctuation dropped", "Display & Frame (OLED)", "display-frame-oled"},
		{"Multiple spaces", "S21   Ultra", "s21-ultra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 131.9, Round2(1319*10.0/100))
	assert.Equal(t, 1187.1, Round2(1319-131.9))
	assert.Equal(t, 0.0, Round2(0))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(120000), ToMinorUnits(1200))
	assert.Equal(t, int64(13190), ToMinorUnits(131.9))
}
