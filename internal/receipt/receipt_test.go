package receipt

import (
	"context"
	"errors"
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVision struct {
	answer string
	err    error
}

func (f *fakeVision) ExtractText(_ context.Context, _ []byte, _, _ string) (string, error) {
	return f.answer, f.err
}

func TestExtract(t *testing.T) {
	client := &fakeVision{answer: `{
		"amount": "89,90",
		"date": "15/01/2023",
		"description": "Posto Shell",
		"payment_method": "credit_card",
		"card_last_digits": "1234",
		"establishment": "Posto Shell Ltda"
	}`}

	draft, err := Extract(context.Background(), client, []byte("img"), "image/jpeg", &logging.MockLogger{})
	require.NoError(t, err)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("89.9")))
	assert.Equal(t, "2023-01-15", draft.Date)
	assert.Equal(t, "Posto Shell", draft.Description)
	assert.Equal(t, models.PaymentCreditCard, draft.PaymentMethod)
	assert.Equal(t, "1234", draft.CardLastDigits)
	assert.Equal(t, models.TypeExpense, draft.Type)
	assert.Equal(t, models.SourcePhoto, draft.Source)
}

func TestExtract_FencedAnswer(t *testing.T) {
	client := &fakeVision{answer: "```json\n{\"amount\": \"45,00\", \"establishment\": \"Padaria Central\"}\n```"}

	draft, err := Extract(context.Background(), client, []byte("img"), "image/png", &logging.MockLogger{})
	require.NoError(t, err)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("45")))
	// Establishment fills in for a missing description.
	assert.Equal(t, "Padaria Central", draft.Description)
}

func TestExtract_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"no JSON", "could not read the receipt"},
		{"malformed JSON", `{"amount": "89,90"`},
		{"no amount", `{"description": "Posto Shell"}`},
		{"zero amount", `{"amount": "0,00", "description": "Posto"}`},
		{"empty answer", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeVision{answer: tc.answer}
			draft, err := Extract(context.Background(), client, []byte("img"), "image/jpeg", &logging.MockLogger{})
			assert.Error(t, err)
			assert.Nil(t, draft)
		})
	}
}

func TestExtract_UnknownMethodDropped(t *testing.T) {
	client := &fakeVision{answer: `{"amount": "10,00", "description": "Loja", "payment_method": "dinheiro"}`}

	draft, err := Extract(context.Background(), client, []byte("img"), "image/jpeg", &logging.MockLogger{})
	require.NoError(t, err)
	assert.Empty(t, draft.PaymentMethod)
}

func TestExtract_ClientErrors(t *testing.T) {
	client := &fakeVision{err: errors.New("quota exceeded")}
	_, err := Extract(context.Background(), client, []byte("img"), "image/jpeg", &logging.MockLogger{})
	assert.Error(t, err)

	_, err = Extract(context.Background(), nil, []byte("img"), "image/jpeg", &logging.MockLogger{})
	assert.Error(t, err)
}
