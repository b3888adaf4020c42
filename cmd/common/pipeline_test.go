package common

import (
	"context"
	"strings"
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/config"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRuntime() *Runtime {
	return &Runtime{
		Config: &config.Config{},
		Logger: &logging.MockLogger{},
		Ref:    &store.ReferenceData{},
		Store:  store.NewMemoryStore(),
	}
}

func TestProcessDrafts_SummaryReportsReviewCount(t *testing.T) {
	rt := testRuntime()
	drafts := []models.Draft{
		{Description: "Sem valor detectado", Source: models.SourceFile},
		{Description: "Também sem valor", Source: models.SourceFile},
		{
			Description:   "Supermercado",
			Amount:        decimal.RequireFromString("150.00"),
			Date:          "2025-01-15",
			Type:          models.TypeExpense,
			Category:      "Alimentação",
			PaymentMethod: "pix",
			Source:        models.SourceFile,
		},
	}

	logger, hook := test.NewNullLogger()
	ProcessDrafts(context.Background(), rt, drafts, "user-1", "file", "", true, logger)

	var summary string
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "need review") {
			summary = entry.Message
		}
	}
	require.NotEmpty(t, summary)
	assert.Contains(t, summary, "3 draft(s) extracted")
	assert.Contains(t, summary, "1 usable")
	// The review figure is a count, never the index slice.
	assert.Contains(t, summary, "2 need review")
	assert.NotContains(t, summary, "[")
}
