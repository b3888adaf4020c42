package classifier

import (
	"context"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
)

// Suggestion is the external classifier's answer. Category must be echoed
// back exactly from the supplied list; suggested card and account names are
// fuzzy-matched back to ids by substring containment.
type Suggestion struct {
	Category         string  `json:"category"`
	Confidence       float64 `json:"confidence"`
	SuggestedCard    string  `json:"suggested_card"`
	SuggestedAccount string  `json:"suggested_account"`
}

// Request carries the transaction fields plus the caller's registered
// names sent to the external classifier.
type Request struct {
	Description string
	Date        string
	Amount      string
	Type        string
	Categories  []string
	Cards       []string
	Accounts    []string
}

// AIClient is the one-shot prompt/response contract with the external AI
// classification service. Implementations must treat any malformed response
// as "no enrichment", never as a pipeline error.
type AIClient interface {
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}

// ApplySuggestion merges an AI suggestion into a draft. The category is
// accepted only when it is a member of the caller's registered set, and an
// existing field with higher confidence is never overwritten.
func ApplySuggestion(draft *models.Draft, s *Suggestion, ref Reference) {
	if s == nil {
		return
	}

	if s.Category != "" && s.Confidence > draft.CategoryConfidence {
		for _, cat := range ref.Categories {
			if strings.EqualFold(cat.Name, s.Category) {
				draft.Category = cat.Name
				draft.CategoryConfidence = s.Confidence
				break
			}
		}
	}

	if s.SuggestedCard != "" && s.Confidence > draft.CardConfidence {
		needle := strings.ToLower(s.SuggestedCard)
		for _, card := range ref.Cards {
			if strings.Contains(strings.ToLower(card.Name), needle) ||
				strings.Contains(needle, strings.ToLower(card.Name)) {
				draft.CardID = card.ID
				draft.CardConfidence = s.Confidence
				break
			}
		}
	}

	if s.SuggestedAccount != "" && s.Confidence > draft.AccountConfidence {
		needle := strings.ToLower(s.SuggestedAccount)
		for _, account := range ref.Accounts {
			if strings.Contains(strings.ToLower(account.Name), needle) ||
				strings.Contains(needle, strings.ToLower(account.Name)) {
				draft.AccountID = account.ID
				draft.AccountConfidence = s.Confidence
				break
			}
		}
	}
}
