// Package moneyutils normalizes locale-specific amount strings into decimal
// values. It handles Brazilian thousands-dot/decimal-comma amounts
// ("1.234,56"), US-formatted amounts ("1,234.56") and bare decimal-comma
// amounts ("1,09").
package moneyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	brFormat = regexp.MustCompile(`\d+\.\d{3},\d{2}`)
	usFormat = regexp.MustCompile(`\d+,\d{3}\.\d{2}`)
	symbols  = regexp.MustCompile(`[R$€£\s]`)
)

// ParseAmount parses a locale-specific amount string into a non-negative
// decimal. Parenthesized or minus-prefixed values are treated as magnitude;
// sign is decided separately by the type classifier. Invalid input yields
// zero, which callers must treat as "undetected".
func ParseAmount(raw string) decimal.Decimal {
	cleaned := symbols.ReplaceAllString(raw, "")
	cleaned = strings.Trim(cleaned, "()")
	cleaned = strings.TrimPrefix(cleaned, "-")
	if cleaned == "" {
		return decimal.Zero
	}

	switch {
	case brFormat.MatchString(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case usFormat.MatchString(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	default:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// IsNegative reports whether the raw amount string carries a negative sign,
// either a minus prefix or accounting parentheses. ParseAmount strips both,
// so extractors record the sign separately for the type classifier.
func IsNegative(raw string) bool {
	cleaned := symbols.ReplaceAllString(raw, "")
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		return true
	}
	return strings.HasPrefix(cleaned, "-")
}

// ParseFloat is a convenience wrapper for callers at the storage boundary
// that still speak float64.
func ParseFloat(raw string) float64 {
	f, _ := ParseAmount(raw).Float64()
	return f
}
