package moneyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Brazilian thousands", "1.234,56", "1234.56"},
		{"Brazilian with symbol", "R$ 1.234,56", "1234.56"},
		{"US thousands", "1,234.56", "1234.56"},
		{"Bare decimal comma", "1,09", "1.09"},
		{"Bare decimal dot", "150.00", "150"},
		{"Plain integer", "150", "150"},
		{"Large Brazilian", "1.234.567,89", "1234567.89"},
		{"Symbol and spaces", "R$  45,90", "45.9"},
		{"Euro symbol", "€ 99,99", "99.99"},
		{"Parenthesized magnitude", "(1.234,56)", "1234.56"},
		{"Minus-prefixed magnitude", "-150,00", "150"},
		{"Empty input", "", "0"},
		{"Garbage", "abc", "0"},
		{"Only symbols", "R$", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tc.expected)
			assert.NoError(t, err)
			assert.True(t, ParseAmount(tc.raw).Equal(expected),
				"ParseAmount(%q) = %s, want %s", tc.raw, ParseAmount(tc.raw), expected)
		})
	}
}

func TestParseAmount_AmbiguousFormats(t *testing.T) {
	// A thousands-dot amount must never be read as a decimal point.
	assert.True(t, ParseAmount("2.500,00").Equal(decimal.NewFromInt(2500)))
	// And the mirror image for US formatting.
	assert.True(t, ParseAmount("2,500.00").Equal(decimal.NewFromInt(2500)))
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{"Minus prefix", "-50,00", true},
		{"Minus with symbol", "R$ -1.234,56", true},
		{"Accounting parentheses", "(1.234,56)", true},
		{"Plain positive", "150,00", false},
		{"Positive with symbol", "R$ 45,90", false},
		{"Empty input", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNegative(tc.raw), "IsNegative(%q)", tc.raw)
		})
	}
}

func TestParseFloat(t *testing.T) {
	assert.InDelta(t, 1234.56, ParseFloat("1.234,56"), 0.0001)
	assert.Zero(t, ParseFloat("not a number"))
}
