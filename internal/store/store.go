// Package store defines the persistence collaborator boundary and the
// reference-data sources the pipeline reads from. The pipeline never owns
// the schema; it only speaks these interfaces.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one canonical persisted transaction.
type Row struct {
	ID                  string          `yaml:"id"`
	UserID              string          `yaml:"user_id"`
	AccountID           string          `yaml:"account_id"`
	CardID              string          `yaml:"card_id"`
	Type                string          `yaml:"type"`
	Description         string          `yaml:"description"`
	Amount              decimal.Decimal `yaml:"amount"`
	TotalAmount         decimal.Decimal `yaml:"total_amount"`
	Category            string          `yaml:"category"`
	Date                string          `yaml:"date"`
	PaymentMethod       string          `yaml:"payment_method"`
	IsAlimony           bool            `yaml:"is_alimony"`
	Origin              string          `yaml:"origin"`
	IsInstallment       bool            `yaml:"is_installment"`
	InstallmentCount    int             `yaml:"installment_count"`
	InstallmentNumber   int             `yaml:"installment_number"`
	LastInstallmentDate string          `yaml:"last_installment_date"`
	CreatedAt           time.Time       `yaml:"created_at"`
}

// InsertResult reports the outcome of persisting one row of a batch.
type InsertResult struct {
	ID  string
	Err error
}

// TransactionStore is the persistence collaborator. Batch insert returns a
// per-row identifier or a row-level error; one rejected row never aborts
// its siblings.
type TransactionStore interface {
	Insert(ctx context.Context, rows []Row) ([]InsertResult, error)
	ListByAccount(ctx context.Context, userID, accountID string) ([]Row, error)
	// DeleteCreatedBetween removes rows created within a timestamp window,
	// supporting import rollback. Returns the number of deleted rows.
	DeleteCreatedBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}
