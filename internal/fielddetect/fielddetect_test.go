package fielddetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected map[string]string
	}{
		{
			name:    "Portuguese bank export",
			headers: []string{"Data", "Descrição", "Valor", "Tipo"},
			expected: map[string]string{
				FieldDate:        "Data",
				FieldDescription: "Descrição",
				FieldAmount:      "Valor",
				FieldType:        "Tipo",
			},
		},
		{
			name:    "English headers",
			headers: []string{"Date", "Description", "Amount", "Category"},
			expected: map[string]string{
				FieldDate:        "Date",
				FieldDescription: "Description",
				FieldAmount:      "Amount",
				FieldCategory:    "Category",
			},
		},
		{
			name:    "keyword containment and case",
			headers: []string{"DATA VENCIMENTO", "Histórico do lançamento", "VALOR TOTAL (R$)"},
			expected: map[string]string{
				FieldDate:        "DATA VENCIMENTO",
				FieldDescription: "Histórico do lançamento",
				FieldAmount:      "VALOR TOTAL (R$)",
			},
		},
		{
			name:    "party columns",
			headers: []string{"Data", "Valor", "Favorecido", "Pagador"},
			expected: map[string]string{
				FieldDate:        "Data",
				FieldAmount:      "Valor",
				FieldBeneficiary: "Favorecido",
				FieldDepositor:   "Pagador",
			},
		},
		{
			name:     "no recognizable headers",
			headers:  []string{"foo", "bar", "baz"},
			expected: map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.headers))
		})
	}
}

func TestDetect_FirstMatchWins(t *testing.T) {
	// Two headers match the amount keywords; the first one in header order
	// must win deterministically.
	mapping := Detect([]string{"Data", "Valor", "Saldo"})
	assert.Equal(t, "Valor", mapping[FieldAmount])
}

func TestScanColumns(t *testing.T) {
	rows := [][]string{
		{"15/01/2023", "Supermercado Pão de Açúcar", "150,00"},
		{"16/01/2023", "Posto Shell", "200,00"},
		{"17/01/2023", "Farmácia São Paulo", "35,90"},
	}

	detected := ScanColumns(rows)
	assert.Equal(t, 0, detected[FieldDate])
	assert.Equal(t, 2, detected[FieldAmount])
	assert.Equal(t, 1, detected[FieldDescription])
}

func TestScanColumns_Empty(t *testing.T) {
	assert.Empty(t, ScanColumns(nil))
	assert.Empty(t, ScanColumns([][]string{}))
}
