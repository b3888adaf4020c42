// Package enhancer runs AI enrichment over a batch of drafts in fixed-size
// groups with bounded concurrency, respecting external rate limits with an
// inter-group delay. A failure on one record never cancels its siblings;
// each failed record falls back to its pre-enhancement draft.
package enhancer

import (
	"context"
	"sync"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/classifier"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/parsererror"
)

// Defaults for group processing.
const (
	DefaultGroupSize  = 5
	DefaultGroupDelay = 2 * time.Second
)

// Enhancer enriches drafts through the external AI classifier.
type Enhancer struct {
	ai         classifier.AIClient
	logger     logging.Logger
	GroupSize  int
	GroupDelay time.Duration
}

// New creates an Enhancer.
func New(ai classifier.AIClient, logger logging.Logger) *Enhancer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Enhancer{
		ai:         ai,
		logger:     logger,
		GroupSize:  DefaultGroupSize,
		GroupDelay: DefaultGroupDelay,
	}
}

// EnhanceBatch enriches the drafts in place and returns them. Records are
// chunked into fixed-size groups; within a group the calls run
// concurrently and each result is resolved independently.
func (e *Enhancer) EnhanceBatch(ctx context.Context, drafts []models.Draft, ref classifier.Reference) []models.Draft {
	if e.ai == nil || len(drafts) == 0 {
		return drafts
	}

	groupSize := e.GroupSize
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	categories := ref.CategoryNames("")
	cardNames := make([]string, 0, len(ref.Cards))
	for _, card := range ref.Cards {
		cardNames = append(cardNames, card.Name)
	}
	accountNames := make([]string, 0, len(ref.Accounts))
	for _, account := range ref.Accounts {
		accountNames = append(accountNames, account.Name)
	}

	for start := 0; start < len(drafts); start += groupSize {
		end := start + groupSize
		if end > len(drafts) {
			end = len(drafts)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				e.enhanceOne(ctx, &drafts[i], ref, categories, cardNames, accountNames)
			}(i)
		}
		wg.Wait()

		if end < len(drafts) && e.GroupDelay > 0 {
			select {
			case <-ctx.Done():
				return drafts
			case <-time.After(e.GroupDelay):
			}
		}
	}
	return drafts
}

// enhanceOne sends one draft to the AI classifier. Any error leaves the
// pre-enhancement draft untouched.
func (e *Enhancer) enhanceOne(ctx context.Context, draft *models.Draft, ref classifier.Reference, categories, cards, accounts []string) {
	suggestion, err := e.ai.Suggest(ctx, classifier.Request{
		Description: draft.Description,
		Date:        draft.Date,
		Amount:      draft.Amount.String(),
		Type:        draft.Type,
		Categories:  categories,
		Cards:       cards,
		Accounts:    accounts,
	})
	if err != nil {
		clsErr := &parsererror.ClassificationError{
			Description: draft.Description,
			Stage:       "ai-enhance",
			Err:         err,
		}
		e.logger.WithError(clsErr).Warn("AI enhancement failed, keeping rule-based draft",
			logging.Field{Key: logging.FieldOperation, Value: "enhance"})
		return
	}
	classifier.ApplySuggestion(draft, suggestion, ref)
}
