// Package confidence computes the 0-100 completeness score of a draft from
// weighted field presence. The tabular and SMS scorers carry independently
// tuned weight tables; they must not be unified, since each source fails in
// a different way (files rarely lose the date, messages rarely lose the
// amount).
package confidence

import (
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
)

type weights struct {
	date        int
	amount      int
	description int
	txType      int
	category    int
	payment     int
}

var tabularWeights = weights{
	date:        25,
	amount:      25,
	description: 20,
	txType:      15,
	category:    10,
	payment:     5,
}

// SMS messages almost always carry an amount and a merchant but often no
// parseable date, so the SMS table front-loads amount and description.
var smsWeights = weights{
	amount:      40,
	description: 25,
	payment:     15,
	date:        10,
	txType:      10,
}

// ScoreTabular scores a draft extracted from a tabular source.
func ScoreTabular(d *models.Draft) int {
	return score(d, tabularWeights)
}

// ScoreSMS scores a draft extracted from a notification message.
func ScoreSMS(d *models.Draft) int {
	return score(d, smsWeights)
}

// Score dispatches on the draft's source tag.
func Score(d *models.Draft) int {
	if d.Source == models.SourceSMS {
		return ScoreSMS(d)
	}
	return ScoreTabular(d)
}

// IsUsable reports whether a draft's score clears the review threshold.
// Sub-threshold drafts are flagged with a warning, never silently dropped.
func IsUsable(score int) bool {
	return score >= models.MinUsableConfidence
}

func score(d *models.Draft, w weights) int {
	total := 0
	if d.Date != "" {
		total += w.date
	}
	if d.Amount.IsPositive() {
		total += w.amount
	}
	if strings.TrimSpace(d.Description) != "" {
		total += w.description
	}
	if d.Type != "" {
		total += w.txType
	}
	if d.Category != "" {
		total += w.category
	}
	if d.PaymentMethod != "" {
		total += w.payment
	}
	if total > 100 {
		total = 100
	}
	return total
}
