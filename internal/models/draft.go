// Package models provides the data structures used throughout the pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// Draft is the canonical in-flight transaction record. It is created by
// exactly one extractor, mutated in place by each enrichment stage, possibly
// expanded into N drafts by the installment expander, and consumed exactly
// once by the import orchestrator.
type Draft struct {
	Date          string          `csv:"Date"`          // ISO YYYY-MM-DD, optionally with time
	Amount        decimal.Decimal `csv:"Amount"`        // non-negative; per-installment when split
	Description   string          `csv:"Description"`   // normalized free text
	Type          string          `csv:"Type"`          // expense, income or investment
	Category      string          `csv:"Category"`      // id or name from the caller's registered set
	PaymentMethod string          `csv:"PaymentMethod"` //
	AccountID     string          `csv:"AccountID"`     // mutually exclusive with CardID for simple rows
	CardID        string          `csv:"CardID"`        //

	IsInstallment       bool   `csv:"IsInstallment"`
	InstallmentCount    int    `csv:"InstallmentCount"`  // >= 2 when set
	InstallmentNumber   int    `csv:"InstallmentNumber"` // 1-based position
	LastInstallmentDate string `csv:"LastInstallmentDate"`

	Confidence  int    `csv:"Confidence"` // 0-100 completeness score
	Source      string `csv:"Source"`     // file, sms, photo, paycheck, ai, history, basic
	NeedsReview bool   `csv:"NeedsReview"`

	// Provenance fields.
	CardLastDigits string `csv:"CardLastDigits"`
	BankName       string `csv:"BankName"`
	RawText        string `csv:"-"`
	// Raw source signals consumed by the type classifier: the original
	// type cell and the transaction parties, when the source had them.
	TypeField    string `csv:"-"`
	PaymentField string `csv:"-"`
	Beneficiary  string `csv:"-"`
	Depositor    string `csv:"-"`
	// Negative records that the source amount carried a minus sign or
	// accounting parentheses. Amount itself is always the magnitude.
	Negative bool `csv:"-"`

	// Per-field confidences in [0,1], set by enrichment stages. A later
	// stage only overwrites a field whose recorded confidence is lower.
	CategoryConfidence float64 `csv:"-"`
	PaymentConfidence  float64 `csv:"-"`
	CardConfidence     float64 `csv:"-"`
	AccountConfidence  float64 `csv:"-"`
}

// HasAmount reports whether an amount was detected. Zero means undetected,
// never a legitimate zero-amount transaction.
func (d *Draft) HasAmount() bool {
	return d.Amount.IsPositive()
}
