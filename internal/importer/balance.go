package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
)

// RecomputeBalance recomputes an account balance from the account's full
// transaction set: incomes added, expenses and investments subtracted.
// A full recompute trades efficiency for correctness under interleaved
// imports — it never assumes exclusive access to the account.
func (imp *Importer) RecomputeBalance(ctx context.Context, userID, accountID string) (decimal.Decimal, error) {
	rows, err := imp.store.ListByAccount(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not list account transactions: %w", err)
	}

	balance := decimal.Zero
	for _, row := range rows {
		switch row.Type {
		case models.TypeIncome:
			balance = balance.Add(row.Amount)
		case models.TypeExpense, models.TypeInvestment:
			balance = balance.Sub(row.Amount)
		}
	}
	return balance, nil
}

// Rollback deletes all rows created within the window around an import
// timestamp. This is the only way already-persisted rows are undone; an
// in-flight batch always runs to completion.
func (imp *Importer) Rollback(ctx context.Context, userID string, importedAt time.Time, window time.Duration) (int, error) {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return imp.store.DeleteCreatedBetween(ctx, userID, importedAt.Add(-window), importedAt.Add(window))
}
