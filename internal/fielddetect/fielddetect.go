// Package fielddetect maps arbitrary tabular column headers to the
// pipeline's canonical fields via case-insensitive keyword containment.
package fielddetect

import (
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"
)

// Canonical field names detected from tabular headers.
const (
	FieldDate          = "date"
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldType          = "type"
	FieldCategory      = "category"
	FieldPaymentMethod = "payment_method"
	FieldBeneficiary   = "beneficiary"
	FieldDepositor     = "depositor"
)

// fieldKeywords holds, per canonical field, the header keywords that
// identify it. Ordered so the detector scans fields deterministically.
var fieldOrder = []string{
	FieldDate, FieldAmount, FieldDescription, FieldType,
	FieldCategory, FieldPaymentMethod, FieldBeneficiary, FieldDepositor,
}

var fieldKeywords = map[string][]string{
	FieldDate:          {"data", "date", "dt", "dia", "vencimento"},
	FieldAmount:        {"valor", "amount", "total", "debito", "credito", "saldo"},
	FieldDescription:   {"descricao", "descrição", "description", "historico", "histórico", "estabelecimento", "memo", "detalhe"},
	FieldType:          {"tipo", "type", "natureza", "operacao", "operação"},
	FieldCategory:      {"categoria", "category"},
	FieldPaymentMethod: {"pagamento", "payment", "forma", "metodo", "método", "meio"},
	FieldBeneficiary:   {"beneficiario", "beneficiário", "favorecido", "destinatario", "destinatário", "beneficiary"},
	FieldDepositor:     {"depositante", "remetente", "pagador", "depositor", "origem"},
}

// Detect maps canonical field names to original headers. The first header
// containing one of a field's keywords wins; fields with no matching header
// are absent from the result and must fall back to ScanColumns.
func Detect(headers []string) map[string]string {
	mapping := make(map[string]string)
	for _, field := range fieldOrder {
		for _, header := range headers {
			if matchesField(header, field) {
				mapping[field] = header
				break
			}
		}
	}
	return mapping
}

func matchesField(header, field string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, keyword := range fieldKeywords[field] {
		if strings.Contains(h, keyword) {
			return true
		}
	}
	return false
}

// ScanColumns is the heuristic fallback for headerless or unmatched
// columns: the first column whose sample values parse as dates becomes the
// date column, the first mostly-numeric column becomes the amount column,
// and the column with the longest average text becomes the description.
// The returned map uses the canonical field names as keys and column
// indices as values; undetected fields are absent.
func ScanColumns(rows [][]string) map[string]int {
	if len(rows) == 0 {
		return map[string]int{}
	}
	cols := len(rows[0])
	detected := make(map[string]int)

	bestTextLen := 0
	for col := 0; col < cols; col++ {
		dates, amounts, textLen, samples := 0, 0, 0, 0
		for _, row := range rows {
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			samples++
			value := row[col]
			if _, err := dateutils.ParseDate(value); err == nil {
				dates++
			} else if moneyutils.ParseAmount(value).IsPositive() {
				amounts++
			}
			textLen += len(value)
		}
		if samples == 0 {
			continue
		}
		switch {
		case dates*2 > samples:
			if _, ok := detected[FieldDate]; !ok {
				detected[FieldDate] = col
			}
		case amounts*2 > samples:
			if _, ok := detected[FieldAmount]; !ok {
				detected[FieldAmount] = col
			}
		default:
			if textLen > bestTextLen {
				bestTextLen = textLen
				detected[FieldDescription] = col
			}
		}
	}
	return detected
}
