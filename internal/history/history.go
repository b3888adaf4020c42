// Package history infers category, payment method, card and account for a
// new draft from the user's past categorized transactions via text
// similarity. The comparison is a pure function over two string sets so the
// matcher can later be swapped for an indexed implementation without
// touching callers.
package history

import (
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/textutils"
)

// similarityCutoff discards candidates below this score.
const similarityCutoff = 0.4

// overwriteThreshold is the minimum per-field historical confidence needed
// to replace a value set by another enrichment stage.
const overwriteThreshold = 0.5

// FieldVote is the winning value for one field, with the normalized weight
// it accumulated across surviving candidates.
type FieldVote struct {
	Value      string
	Confidence float64
}

// Match aggregates the per-field winners over all candidates that passed
// the similarity cutoff.
type Match struct {
	Category      FieldVote
	PaymentMethod FieldVote
	CardID        FieldVote
	AccountID     FieldVote
	Confidence    float64 // min(top candidate similarity * 1.1, 1.0)
}

// Similarity scores two descriptions in [0,1]. Exact normalized match is
// 1.0; full containment of the shorter in the longer scores by length
// ratio; otherwise tokens of length >= 3 that are not purely numeric are
// compared with Jaccard (40%) and overlap coefficient (60%).
func Similarity(a, b string) float64 {
	na, nb := textutils.Normalize(a), textutils.Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}

	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) {
		return float64(len(shorter)) / float64(len(longer)) * 0.95
	}

	setA, setB := textutils.TokenSet(na), textutils.TokenSet(nb)
	return 0.4*textutils.Jaccard(setA, setB) + 0.6*textutils.Overlap(setA, setB)
}

// FindMatch scores a description against a bounded window of the user's
// past transactions and reduces the survivors to weighted-frequency winners
// per field. Returns nil when no candidate clears the cutoff.
func FindMatch(description string, past []models.HistoryRecord, logger logging.Logger) *Match {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	type candidate struct {
		record models.HistoryRecord
		score  float64
	}
	var survivors []candidate
	topScore := 0.0
	for _, record := range past {
		score := Similarity(description, record.Description)
		if score < similarityCutoff {
			continue
		}
		survivors = append(survivors, candidate{record, score})
		if score > topScore {
			topScore = score
		}
	}
	if len(survivors) == 0 {
		return nil
	}

	category := newTally()
	payment := newTally()
	card := newTally()
	account := newTally()
	for _, c := range survivors {
		category.add(c.record.Category, c.score)
		payment.add(c.record.PaymentMethod, c.score)
		card.add(c.record.CardID, c.score)
		account.add(c.record.AccountID, c.score)
	}

	overall := topScore * 1.1
	if overall > 1.0 {
		overall = 1.0
	}

	match := &Match{
		Category:      category.winner(),
		PaymentMethod: payment.winner(),
		CardID:        card.winner(),
		AccountID:     account.winner(),
		Confidence:    overall,
	}
	logger.Debug("Historical match found",
		logging.Field{Key: logging.FieldCount, Value: len(survivors)},
		logging.Field{Key: logging.FieldConfidence, Value: overall})
	return match
}

// Apply backfills draft fields from a match. A field already set by another
// stage is only overwritten when the historical confidence for that field
// exceeds the 0.5 threshold and the existing value's own confidence is
// lower.
func Apply(draft *models.Draft, match *Match) {
	if match == nil {
		return
	}
	if shouldSet(draft.Category, draft.CategoryConfidence, match.Category) {
		draft.Category = match.Category.Value
		draft.CategoryConfidence = match.Category.Confidence
	}
	if shouldSet(draft.PaymentMethod, draft.PaymentConfidence, match.PaymentMethod) {
		draft.PaymentMethod = match.PaymentMethod.Value
		draft.PaymentConfidence = match.PaymentMethod.Confidence
	}
	if shouldSet(draft.CardID, draft.CardConfidence, match.CardID) {
		draft.CardID = match.CardID.Value
		draft.CardConfidence = match.CardID.Confidence
	}
	if shouldSet(draft.AccountID, draft.AccountConfidence, match.AccountID) {
		draft.AccountID = match.AccountID.Value
		draft.AccountConfidence = match.AccountID.Confidence
	}
}

func shouldSet(current string, currentConfidence float64, vote FieldVote) bool {
	if vote.Value == "" {
		return false
	}
	if current == "" {
		return true
	}
	return vote.Confidence > overwriteThreshold && currentConfidence < vote.Confidence
}

// tally accumulates similarity-weighted frequency per field value.
type tally struct {
	weights map[string]float64
	total   float64
}

func newTally() *tally {
	return &tally{weights: make(map[string]float64)}
}

func (t *tally) add(value string, weight float64) {
	t.total += weight
	if value == "" {
		return
	}
	t.weights[value] += weight
}

func (t *tally) winner() FieldVote {
	best, bestWeight := "", 0.0
	for value, weight := range t.weights {
		// Lexicographic tie-break keeps the winner stable across map
		// iteration orders.
		if weight > bestWeight || (weight == bestWeight && best != "" && value < best) {
			best, bestWeight = value, weight
		}
	}
	if best == "" || t.total == 0 {
		return FieldVote{}
	}
	return FieldVote{Value: best, Confidence: bestWeight / t.total}
}
