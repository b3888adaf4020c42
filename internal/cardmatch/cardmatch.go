// Package cardmatch resolves a credit card reference from a 4-digit suffix
// against a caller-supplied card list.
package cardmatch

import (
	"regexp"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
)

// Match types reported alongside a resolved card.
const (
	MatchPrimary    = "primary"
	MatchAdditional = "additional"
)

var nonDigits = regexp.MustCompile(`\D`)

// Match is a resolved card reference.
type Match struct {
	Card       models.Card
	Confidence float64
	MatchType  string
}

// ByDigits resolves a card from a digit string. The input is normalized by
// stripping non-digits and taking the last four characters; anything that
// does not normalize to exactly four digits yields no match, not an error.
//
// The primary last_digits field is checked across all cards before any
// card's secondary digit list, and the first card found wins — card list
// order is the caller's responsibility.
func ByDigits(digits string, cards []models.Card) *Match {
	normalized := normalize(digits)
	if normalized == "" {
		return nil
	}

	for _, card := range cards {
		if normalize(card.LastDigits) == normalized {
			return &Match{Card: card, Confidence: 1.0, MatchType: MatchPrimary}
		}
	}

	for _, card := range cards {
		for _, extra := range card.LastDigitsList {
			if normalize(extra) == normalized {
				return &Match{Card: card, Confidence: 0.95, MatchType: MatchAdditional}
			}
		}
	}

	return nil
}

func normalize(digits string) string {
	cleaned := nonDigits.ReplaceAllString(digits, "")
	if len(cleaned) > 4 {
		cleaned = cleaned[len(cleaned)-4:]
	}
	if len(cleaned) != 4 {
		return ""
	}
	return cleaned
}
