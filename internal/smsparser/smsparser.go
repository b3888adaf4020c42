// Package smsparser extracts transaction drafts from free-text bank
// notifications (SMS and push messages). An ordered table of named
// patterns is tried against each message and the first match wins.
package smsparser

import (
	"strconv"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"

	"github.com/shopspring/decimal"
)

// minMessageLength is the shortest line worth matching; anything under it
// is dropped silently during multi-message ingestion.
const minMessageLength = 10

// Extract matches one notification message against the pattern table and
// returns a draft, or nil when no pattern matched or no positive amount was
// found. When the message embeds an installment count ("em N vezes") the
// returned amount is the per-installment value, not the total.
func Extract(message string, logger logging.Logger) *models.Draft {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	for _, p := range patterns {
		groups := p.groups(message)
		if groups == nil {
			continue
		}

		amount := moneyutils.ParseAmount(groups["amount"])
		if !amount.IsPositive() {
			// A matched pattern with no usable amount is not a
			// transaction; keep trying weaker patterns.
			continue
		}

		draft := &models.Draft{
			Amount:        amount,
			Description:   strings.TrimSpace(groups["desc"]),
			Type:          p.txType,
			PaymentMethod: p.payment,
			Source:        models.SourceSMS,
			BankName:      strings.TrimSpace(groups["bank"]),
			RawText:       message,
		}

		if date := dateutils.NormalizeDate(groups["date"]); date != "" {
			draft.Date = date
			if t := groups["time"]; t != "" {
				draft.Date += " " + t
			}
		}

		if m := cardDigitsRe.FindStringSubmatch(message); m != nil {
			draft.CardLastDigits = m[1]
		}

		if m := installmentRe.FindStringSubmatch(message); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 2 {
				draft.IsInstallment = true
				draft.InstallmentCount = n
				draft.Amount = amount.Div(decimal.NewFromInt(int64(n)))
			}
		}

		logger.Debug("Message matched",
			logging.Field{Key: logging.FieldPattern, Value: p.id},
			logging.Field{Key: logging.FieldAmount, Value: draft.Amount.String()},
		)
		return draft
	}

	logger.Debug("No pattern matched message",
		logging.Field{Key: logging.FieldSource, Value: models.SourceSMS})
	return nil
}

// ExtractAll splits a multi-message payload on blank-line boundaries and
// extracts each message independently. Lines under ten characters and
// messages with no match are dropped silently; callers aggregate the drop
// count through the validator.
func ExtractAll(text string, logger logging.Logger) []models.Draft {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var drafts []models.Draft
	for _, block := range splitMessages(text) {
		if len(block) < minMessageLength {
			continue
		}
		if draft := Extract(block, logger); draft != nil {
			drafts = append(drafts, *draft)
		}
	}

	logger.Info("Extracted drafts from message batch",
		logging.Field{Key: logging.FieldDraftCount, Value: len(drafts)})
	return drafts
}

func splitMessages(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	for _, block := range strings.Split(normalized, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
