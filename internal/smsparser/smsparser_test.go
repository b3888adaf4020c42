package smsparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_BankPurchase(t *testing.T) {
	draft := Extract("CAIXA: Compra aprovada LOJA DAS FABRICAS R$ 1.234,56 06/10 às 16:45", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "LOJA DAS FABRICAS", draft.Description)
	assert.Equal(t, models.TypeExpense, draft.Type)
	assert.Equal(t, models.PaymentCreditCard, draft.PaymentMethod)
	assert.Equal(t, "CAIXA", draft.BankName)
	assert.Equal(t, models.SourceSMS, draft.Source)
	assert.Equal(t, fmt.Sprintf("%d-10-06 16:45", time.Now().Year()), draft.Date)
}

func TestExtract_PixReceived(t *testing.T) {
	draft := Extract("PIX recebido de João Silva, no valor de R$ 250,00", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("250")))
	assert.Equal(t, "João Silva", draft.Description)
	assert.Equal(t, models.TypeIncome, draft.Type)
	assert.Equal(t, models.PaymentPix, draft.PaymentMethod)
}

func TestExtract_PixSent(t *testing.T) {
	draft := Extract("Pix enviado para Maria Souza: R$ 50,00", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.Equal(t, models.TypeExpense, draft.Type)
	assert.Equal(t, models.PaymentPix, draft.PaymentMethod)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("50")))
}

func TestExtract_SalaryCredit(t *testing.T) {
	draft := Extract("Salário creditado no valor de R$ 5.000,00", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.Equal(t, models.TypeIncome, draft.Type)
	assert.Equal(t, models.PaymentPaycheck, draft.PaymentMethod)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("5000")))
}

func TestExtract_Installments(t *testing.T) {
	draft := Extract("NUBANK: Compra aprovada MAGAZINE LUIZA R$ 300,00 em 3 vezes 06/10 às 10:00", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.True(t, draft.IsInstallment)
	assert.Equal(t, 3, draft.InstallmentCount)
	// The draft carries the per-installment value, not the total.
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("100")),
		"amount = %s, want 100", draft.Amount)
}

func TestExtract_CardDigits(t *testing.T) {
	draft := Extract("Compra de R$ 89,90 no POSTO SHELL cartão final 1234", &logging.MockLogger{})
	require.NotNil(t, draft)
	assert.Equal(t, "1234", draft.CardLastDigits)
}

func TestExtract_CatchAllAmountOnly(t *testing.T) {
	draft := Extract("Lançamento confirmado: R$ 1.500,00", &logging.MockLogger{})
	require.NotNil(t, draft)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, models.TypeExpense, draft.Type)
	// The catch-all assumes no payment method; enrichment fills the gap.
	assert.Empty(t, draft.PaymentMethod)
}

func TestExtract_NoMatch(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"verification code", "Seu código de verificação é 123456"},
		{"no amount", "Compra aprovada em LOJA"},
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, Extract(tc.message, &logging.MockLogger{}))
		})
	}
}

func TestExtractAll(t *testing.T) {
	text := `CAIXA: Compra aprovada PADARIA CENTRAL R$ 25,50 06/10 às 08:00

curto

PIX recebido de Empresa XYZ, no valor de R$ 1.200,00

Mensagem sem nenhum valor para extrair aqui`

	drafts := ExtractAll(text, &logging.MockLogger{})
	require.Len(t, drafts, 2)
	assert.Equal(t, models.TypeExpense, drafts[0].Type)
	assert.Equal(t, models.TypeIncome, drafts[1].Type)
}

func TestExtractAll_Empty(t *testing.T) {
	assert.Empty(t, ExtractAll("", &logging.MockLogger{}))
}
