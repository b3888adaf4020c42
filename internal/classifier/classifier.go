// Package classifier assigns transaction type, category and payment method
// to drafts. Category resolution merges keyword rules, a token-overlap
// scorer over the caller's registered category names, and (optionally) an
// external AI classifier; the result is always a member of the caller's
// registered set.
package classifier

import (
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/textutils"

	"github.com/shopspring/decimal"
)

// scoreFloor is the minimum secondary-scorer similarity for a category to
// be accepted when the keyword pass found nothing.
const scoreFloor = 0.3

// Reference carries the caller-supplied reference data every resolution is
// restricted to.
type Reference struct {
	UserIdentity string
	Categories   []models.Category
	Accounts     []models.Account
	Cards        []models.Card
}

// CategoryNames returns the registered category names, optionally filtered
// by transaction type.
func (r Reference) CategoryNames(txType string) []string {
	var names []string
	for _, c := range r.Categories {
		if txType == "" || c.Type == txType {
			names = append(names, c.Name)
		}
	}
	return names
}

// Classifier resolves type, category and payment method on drafts.
type Classifier struct {
	logger logging.Logger
}

// New creates a Classifier.
func New(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{logger: logger}
}

// ResolveType assigns the transaction type. Resolution order:
// explicit type keyword (investment before income/expense), party-identity
// heuristics against the user's own identity string, then amount sign.
func (c *Classifier) ResolveType(typeField, beneficiary, depositor string, ref Reference, amount decimal.Decimal) string {
	field := strings.ToLower(strings.TrimSpace(typeField))
	if field != "" {
		if containsAny(field, investmentTypeKeywords) {
			return models.TypeInvestment
		}
		if containsAny(field, incomeTypeKeywords) {
			return models.TypeIncome
		}
		if containsAny(field, expenseTypeKeywords) {
			return models.TypeExpense
		}
	}

	identity := strings.ToLower(strings.TrimSpace(ref.UserIdentity))
	if identity != "" {
		ben := strings.ToLower(strings.TrimSpace(beneficiary))
		dep := strings.ToLower(strings.TrimSpace(depositor))
		if ben != "" && dep != "" && ben == identity && dep == identity {
			return models.TypeInvestment
		}
		if ben == identity {
			return models.TypeIncome
		}
	}

	if amount.IsNegative() {
		return models.TypeExpense
	}
	return models.TypeIncome
}

// ResolveCategory assigns a category from the caller's registered set, or
// returns empty when nothing matches. The keyword pass runs first; when it
// finds no bucket, the secondary token-overlap scorer picks the best
// registered category above the floor.
func (c *Classifier) ResolveCategory(description, txType string, ref Reference) string {
	desc := strings.ToLower(description)
	if strings.TrimSpace(desc) == "" {
		return ""
	}

	if bucket := matchBucket(desc, txType); bucket != "" {
		if name := findRegistered(bucket, txType, ref); name != "" {
			c.logger.Debug("Category resolved by keyword bucket",
				logging.Field{Key: logging.FieldCategory, Value: name})
			return name
		}
		// A bucket with no registered counterpart is left unset rather
		// than defaulting to an invented label.
	}

	best, bestScore := "", 0.0
	for _, cat := range ref.Categories {
		if txType != "" && cat.Type != txType {
			continue
		}
		score := nameSimilarity(desc, cat.Name)
		if score > bestScore {
			best, bestScore = cat.Name, score
		}
	}
	if bestScore > scoreFloor {
		c.logger.Debug("Category resolved by name similarity",
			logging.Field{Key: logging.FieldCategory, Value: best},
			logging.Field{Key: logging.FieldConfidence, Value: bestScore})
		return best
	}
	return ""
}

// ResolvePaymentMethod resolves the payment method from an explicit payment
// field first, then infers it from the description. Investment drafts with
// no explicit signal resolve to empty, left for manual choice.
func (c *Classifier) ResolvePaymentMethod(paymentField, description, txType string) string {
	if method := matchPayment(strings.ToLower(paymentField)); method != "" {
		return method
	}
	if txType == models.TypeInvestment {
		return ""
	}
	return matchPayment(strings.ToLower(description))
}

// Classify runs the rule-based stages on a draft in place, respecting
// per-field confidences set by earlier stages.
func (c *Classifier) Classify(draft *models.Draft, ref Reference) {
	if draft.Type == "" {
		// Amount is magnitude-only; restore the source sign for the
		// sign-based fallback.
		amount := draft.Amount
		if draft.Negative {
			amount = amount.Neg()
		}
		draft.Type = c.ResolveType(draft.TypeField, draft.Beneficiary, draft.Depositor, ref, amount)
	}
	if draft.Category == "" {
		if name := c.ResolveCategory(draft.Description, draft.Type, ref); name != "" {
			draft.Category = name
			draft.CategoryConfidence = 0.6
		}
	}
	if draft.PaymentMethod == "" {
		if method := c.ResolvePaymentMethod(draft.PaymentField, draft.Description, draft.Type); method != "" {
			draft.PaymentMethod = method
			draft.PaymentConfidence = 0.6
		}
	}
	if draft.Category == "" || draft.PaymentMethod == "" {
		draft.NeedsReview = true
	}
}

func matchBucket(desc, txType string) string {
	buckets, ok := categoryBuckets[txType]
	if !ok {
		return ""
	}
	for _, bucket := range bucketOrder[txType] {
		for _, keyword := range buckets[bucket] {
			if strings.Contains(desc, keyword) {
				return bucket
			}
		}
	}
	return ""
}

func findRegistered(bucket, txType string, ref Reference) string {
	for _, cat := range ref.Categories {
		if txType != "" && cat.Type != txType {
			continue
		}
		if strings.Contains(strings.ToLower(cat.Name), bucket) {
			return cat.Name
		}
	}
	return ""
}

// nameSimilarity is the secondary scorer: 80% substring containment plus
// 20% shared-word ratio between description and category name.
func nameSimilarity(desc, name string) float64 {
	lowerName := strings.ToLower(name)
	containment := 0.0
	if strings.Contains(desc, lowerName) || strings.Contains(lowerName, desc) {
		containment = 1.0
	}
	return 0.8*containment + 0.2*textutils.SharedWordRatio(desc, name)
}

func matchPayment(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, method := range paymentOrder {
		if containsAny(text, paymentKeywords[method]) {
			return method
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
