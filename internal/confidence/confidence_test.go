package confidence

import (
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fullDraft(source string) *models.Draft {
	return &models.Draft{
		Date:          "2023-01-15",
		Amount:        decimal.RequireFromString("150.00"),
		Description:   "Supermercado",
		Type:          models.TypeExpense,
		Category:      "Alimentação",
		PaymentMethod: "credit_card",
		Source:        source,
	}
}

func TestScoreTabular(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*models.Draft)
		expected int
	}{
		{"complete draft", func(d *models.Draft) {}, 100},
		{"missing date", func(d *models.Draft) { d.Date = "" }, 75},
		{"missing amount", func(d *models.Draft) { d.Amount = decimal.Zero }, 75},
		{"missing description", func(d *models.Draft) { d.Description = "" }, 80},
		{"missing type", func(d *models.Draft) { d.Type = "" }, 85},
		{"missing category", func(d *models.Draft) { d.Category = "" }, 90},
		{"missing payment", func(d *models.Draft) { d.PaymentMethod = "" }, 95},
		{"amount only", func(d *models.Draft) {
			d.Date, d.Description, d.Type, d.Category, d.PaymentMethod = "", "", "", "", ""
		}, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := fullDraft(models.SourceFile)
			tc.modify(d)
			assert.Equal(t, tc.expected, ScoreTabular(d))
		})
	}
}

func TestScoreSMS(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*models.Draft)
		expected int
	}{
		{"complete draft", func(d *models.Draft) {}, 100},
		{"missing date", func(d *models.Draft) { d.Date = "" }, 90},
		{"missing amount", func(d *models.Draft) { d.Amount = decimal.Zero }, 60},
		{"missing payment and date", func(d *models.Draft) { d.PaymentMethod, d.Date = "", "" }, 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := fullDraft(models.SourceSMS)
			tc.modify(d)
			assert.Equal(t, tc.expected, ScoreSMS(d))
		})
	}
}

func TestScore_DispatchesOnSource(t *testing.T) {
	sms := fullDraft(models.SourceSMS)
	sms.Date = ""
	assert.Equal(t, ScoreSMS(sms), Score(sms))

	tabular := fullDraft(models.SourceFile)
	tabular.Date = ""
	assert.Equal(t, ScoreTabular(tabular), Score(tabular))
	assert.NotEqual(t, Score(sms), Score(tabular))
}

func TestIsUsable(t *testing.T) {
	assert.True(t, IsUsable(100))
	assert.True(t, IsUsable(models.MinUsableConfidence))
	assert.False(t, IsUsable(models.MinUsableConfidence-1))
	assert.False(t, IsUsable(0))
}
