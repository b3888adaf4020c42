package enhancer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/classifier"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAI answers from a canned map and records every request it saw.
type fakeAI struct {
	mu       sync.Mutex
	answers  map[string]*classifier.Suggestion
	failFor  string
	requests []classifier.Request
}

func (f *fakeAI) Suggest(_ context.Context, req classifier.Request) (*classifier.Suggestion, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if req.Description == f.failFor {
		return nil, errors.New("rate limited")
	}
	return f.answers[req.Description], nil
}

func testRef() classifier.Reference {
	return classifier.Reference{
		Categories: []models.Category{
			{ID: "cat-1", Name: "Alimentação", Type: models.TypeExpense},
			{ID: "cat-2", Name: "Transporte", Type: models.TypeExpense},
		},
	}
}

func drafts(descriptions ...string) []models.Draft {
	out := make([]models.Draft, len(descriptions))
	for i, d := range descriptions {
		out[i] = models.Draft{Description: d, Type: models.TypeExpense}
	}
	return out
}

func TestEnhanceBatch(t *testing.T) {
	ai := &fakeAI{answers: map[string]*classifier.Suggestion{
		"Uber":   {Category: "Transporte", Confidence: 0.9},
		"iFood":  {Category: "Alimentação", Confidence: 0.85},
		"Apagar": nil,
	}}
	e := New(ai, &logging.MockLogger{})
	e.GroupDelay = 0

	result := e.EnhanceBatch(context.Background(), drafts("Uber", "iFood", "Apagar"), testRef())
	require.Len(t, result, 3)

	assert.Equal(t, "Transporte", result[0].Category)
	assert.Equal(t, "Alimentação", result[1].Category)
	// A nil suggestion leaves the draft untouched.
	assert.Empty(t, result[2].Category)
	assert.Len(t, ai.requests, 3)
}

func TestEnhanceBatch_FailureKeepsRuleBasedDraft(t *testing.T) {
	ai := &fakeAI{
		answers: map[string]*classifier.Suggestion{
			"Uber": {Category: "Transporte", Confidence: 0.9},
		},
		failFor: "Quebrado",
	}
	e := New(ai, &logging.MockLogger{})
	e.GroupDelay = 0

	batch := drafts("Uber", "Quebrado")
	batch[1].Category = "Alimentação"
	batch[1].CategoryConfidence = 0.6

	result := e.EnhanceBatch(context.Background(), batch, testRef())

	assert.Equal(t, "Transporte", result[0].Category)
	// The failed record falls back to its pre-enhancement state.
	assert.Equal(t, "Alimentação", result[1].Category)
}

func TestEnhanceBatch_Grouping(t *testing.T) {
	ai := &fakeAI{answers: map[string]*classifier.Suggestion{}}
	e := New(ai, &logging.MockLogger{})
	e.GroupSize = 2
	e.GroupDelay = 0

	result := e.EnhanceBatch(context.Background(),
		drafts("a", "b", "c", "d", "e"), testRef())

	assert.Len(t, result, 5)
	assert.Len(t, ai.requests, 5)
}

func TestEnhanceBatch_NoClientIsANoOp(t *testing.T) {
	e := New(nil, &logging.MockLogger{})
	batch := drafts("Uber")
	assert.Equal(t, batch, e.EnhanceBatch(context.Background(), batch, testRef()))
}

func TestEnhanceBatch_ContextCancellationStopsBetweenGroups(t *testing.T) {
	ai := &fakeAI{answers: map[string]*classifier.Suggestion{}}
	e := New(ai, &logging.MockLogger{})
	e.GroupSize = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := e.EnhanceBatch(ctx, drafts("a", "b", "c"), testRef())

	// The first group always completes; the cancelled context stops the
	// batch at the first inter-group delay.
	assert.Len(t, result, 3)
	assert.Len(t, ai.requests, 1)
}
