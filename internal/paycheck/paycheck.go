// Package paycheck extracts an income draft from the text of a payroll
// document (contracheque). The text itself comes from the external vision
// collaborator; this package only owns the field extraction.
package paycheck

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"
)

var (
	// netRe is tried first: the net value is what actually lands on the
	// account. grossRe and discountsRe feed the description.
	netRe       = regexp.MustCompile(`(?i)(?:valor\s+)?l[íi]quido(?:\s+a\s+receber)?[\s.:]{0,30}([\d.,]+)`)
	grossRe     = regexp.MustCompile(`(?i)total\s+de\s+(?:vencimentos|proventos)[\s.:]{0,30}([\d.,]+)`)
	discountsRe = regexp.MustCompile(`(?i)total\s+de\s+descontos[\s.:]{0,30}([\d.,]+)`)
	creditRe    = regexp.MustCompile(`(?i)(?:data\s+de\s+cr[ée]dito|cr[ée]dito\s+em)[\s.:]{0,30}(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`)
	employerRe  = regexp.MustCompile(`(?i)(?:empregador|raz[ãa]o\s+social|empresa)[:\s]+(.+)`)
)

// Extract parses payroll text into an income draft, or returns nil when no
// net or gross value is found.
func Extract(text string, logger logging.Logger) *models.Draft {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	amount := firstAmount(netRe, text)
	if !amount.IsPositive() {
		amount = firstAmount(grossRe, text)
	}
	if !amount.IsPositive() {
		logger.Debug("No payroll value found",
			logging.Field{Key: logging.FieldSource, Value: models.SourcePaycheck})
		return nil
	}

	description := "Salário"
	if m := employerRe.FindStringSubmatch(text); m != nil {
		description = "Salário " + strings.TrimSpace(m[1])
	}

	draft := &models.Draft{
		Amount:        amount,
		Description:   description,
		Type:          models.TypeIncome,
		PaymentMethod: models.PaymentPaycheck,
		Source:        models.SourcePaycheck,
		RawText:       text,
	}

	if m := creditRe.FindStringSubmatch(text); m != nil {
		draft.Date = dateutils.NormalizeDate(m[1])
	}

	if gross := firstAmount(grossRe, text); gross.IsPositive() {
		if discounts := firstAmount(discountsRe, text); discounts.IsPositive() {
			logger.Debug("Payroll totals extracted",
				logging.Field{Key: "gross", Value: gross.String()},
				logging.Field{Key: "discounts", Value: discounts.String()})
		}
	}

	return draft
}

func firstAmount(re *regexp.Regexp, text string) decimal.Decimal {
	if m := re.FindStringSubmatch(text); m != nil {
		return moneyutils.ParseAmount(m[1])
	}
	return decimal.Zero
}
