// Package installment expands one logical purchase into N dated ledger
// rows with calendar-correct monthly rollover.
//
// Two behaviors are deliberate and documented rather than special-cased:
// the per-installment amount is the exact division of the total (no
// cent-level redistribution of rounding remainder), and month arithmetic
// uses native time.AddDate semantics, so a start date near month-end rolls
// into the following month when the target month is shorter.
package installment

import (
	"fmt"

	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
)

// Expand turns a draft with a total amount into count dated sub-drafts.
// Every row carries amount = total/count, date advanced by its index in
// calendar months, a " (i/N)" description suffix, a 1-based installment
// number, and the date of the final row.
func Expand(draft models.Draft, total decimal.Decimal, count int) ([]models.Draft, error) {
	if count < 2 {
		return nil, fmt.Errorf("installment count must be at least 2, got %d", count)
	}
	start, err := dateutils.ParseDate(draft.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid installment start date: %w", err)
	}

	perInstallment := total.Div(decimal.NewFromInt(int64(count)))
	lastDate := start.AddDate(0, count-1, 0).Format(dateutils.LayoutISO)

	rows := make([]models.Draft, count)
	for i := 0; i < count; i++ {
		row := draft
		row.Amount = perInstallment
		row.Date = start.AddDate(0, i, 0).Format(dateutils.LayoutISO)
		row.Description = fmt.Sprintf("%s (%d/%d)", draft.Description, i+1, count)
		row.IsInstallment = true
		row.InstallmentCount = count
		row.InstallmentNumber = i + 1
		row.LastInstallmentDate = lastDate
		rows[i] = row
	}
	return rows, nil
}
