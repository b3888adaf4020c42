// Package validation checks extraction results before review. Warnings
// accumulate and are shown in the review step; only hard blocking
// conditions produce an error.
package validation

import (
	"fmt"

	"github.com/bragabarreto/financeai-pro-sub000/internal/confidence"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
)

// Result aggregates the outcome of validating one extraction batch.
type Result struct {
	Valid    bool
	Warnings []string
	// Usable counts drafts whose confidence clears the review threshold.
	Usable int
	// NeedsReview holds the indices of drafts flagged for manual review.
	NeedsReview []int
}

// ValidateExtraction validates a batch of extracted drafts. An empty batch
// is valid with a warning — finding zero transactions in the input is not
// an error condition. Low-confidence drafts are flagged, never dropped.
func ValidateExtraction(drafts []models.Draft) Result {
	result := Result{Valid: true}

	if len(drafts) == 0 {
		result.Warnings = append(result.Warnings, "no transactions found in input")
		return result
	}

	for i := range drafts {
		draft := &drafts[i]
		if !draft.HasAmount() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("draft %d: no amount detected", i+1))
			result.NeedsReview = append(result.NeedsReview, i)
			continue
		}

		score := confidence.Score(draft)
		draft.Confidence = score
		if !confidence.IsUsable(score) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("draft %d: low confidence (%d)", i+1, score))
			draft.NeedsReview = true
			result.NeedsReview = append(result.NeedsReview, i)
			continue
		}
		if draft.NeedsReview {
			result.NeedsReview = append(result.NeedsReview, i)
		}
		result.Usable++
	}

	return result
}
