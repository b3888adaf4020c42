// Package importer sequences validation, per-row persistence with isolated
// failure handling, and post-import balance recomputation. Drafts are
// processed sequentially, never concurrently, to keep error attribution and
// balance recomputation deterministic.
package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/cardmatch"
	"github.com/bragabarreto/financeai-pro-sub000/internal/dateutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/installment"
	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"
	"github.com/bragabarreto/financeai-pro-sub000/internal/models"
	"github.com/bragabarreto/financeai-pro-sub000/internal/moneyutils"
	"github.com/bragabarreto/financeai-pro-sub000/internal/parsererror"
	"github.com/bragabarreto/financeai-pro-sub000/internal/store"

	"github.com/shopspring/decimal"
)

// Options carries the caller context for one import batch.
type Options struct {
	UserID           string
	Reference        *store.ReferenceData
	DefaultAccountID string
	Origin           string
}

// Failure records one isolated row-level error.
type Failure struct {
	Row         int
	Description string
	Message     string
}

// Result is the outcome of one import batch.
type Result struct {
	InsertedIDs []string
	Failures    []Failure
	// Balances holds the recomputed balance of every touched account.
	Balances   map[string]decimal.Decimal
	StartedAt  time.Time
	FinishedAt time.Time
}

// Importer persists user-approved drafts.
type Importer struct {
	store  store.TransactionStore
	logger logging.Logger
}

// New creates an Importer.
func New(txStore store.TransactionStore, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{store: txStore, logger: logger}
}

// Import persists a batch of user-approved drafts. Any row-level error is
// caught, recorded in the failure list with its message, and processing
// continues with the next draft — a partial failure never aborts the batch.
// After the batch, the balance of every touched account is recomputed from
// that account's full transaction set.
func (imp *Importer) Import(ctx context.Context, drafts []models.Draft, opts Options) (*Result, error) {
	result := &Result{
		Balances:  make(map[string]decimal.Decimal),
		StartedAt: time.Now(),
	}
	touched := make(map[string]struct{})

	for i, draft := range drafts {
		rows, err := imp.prepareRows(draft, opts)
		if err != nil {
			imp.recordFailure(result, i, draft.Description, err)
			continue
		}

		inserted, err := imp.store.Insert(ctx, rows)
		if err != nil {
			imp.recordFailure(result, i, draft.Description, err)
			continue
		}
		for _, res := range inserted {
			if res.Err != nil {
				imp.recordFailure(result, i, draft.Description, res.Err)
				continue
			}
			result.InsertedIDs = append(result.InsertedIDs, res.ID)
		}
		for _, row := range rows {
			if row.AccountID != "" {
				touched[row.AccountID] = struct{}{}
			}
		}
	}

	for accountID := range touched {
		balance, err := imp.RecomputeBalance(ctx, opts.UserID, accountID)
		if err != nil {
			imp.logger.WithError(err).Warn("Balance recomputation failed",
				logging.Field{Key: logging.FieldAccount, Value: accountID})
			continue
		}
		result.Balances[accountID] = balance
	}

	result.FinishedAt = time.Now()
	imp.logger.Info("Import batch finished",
		logging.Field{Key: logging.FieldCount, Value: len(result.InsertedIDs)},
		logging.Field{Key: "failures", Value: len(result.Failures)})
	return result, nil
}

// prepareRows converts one draft into its persisted rows, expanding
// installments. The draft amount is per-installment, so the expander
// receives amount * count as the total.
func (imp *Importer) prepareRows(draft models.Draft, opts Options) ([]store.Row, error) {
	// Defensive re-normalization even when the draft looks canonical.
	fields := strings.Fields(draft.Date)
	if len(fields) == 0 {
		return nil, fmt.Errorf("missing date")
	}
	date := dateutils.NormalizeDate(fields[0])
	if date == "" {
		return nil, fmt.Errorf("invalid date %q", draft.Date)
	}
	amount := draft.Amount
	if amount.IsZero() {
		amount = moneyutils.ParseAmount(draft.RawText)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("no positive amount")
	}
	draft.Date = date
	draft.Amount = amount

	draft.Category = resolveCategory(draft.Category, opts.Reference)
	resolveChannel(&draft, opts)

	origin := opts.Origin
	if origin == "" {
		origin = draft.Source
	}

	if draft.IsInstallment && draft.InstallmentCount >= 2 {
		total := draft.Amount.Mul(decimal.NewFromInt(int64(draft.InstallmentCount)))
		expanded, err := installment.Expand(draft, total, draft.InstallmentCount)
		if err != nil {
			return nil, err
		}
		rows := make([]store.Row, len(expanded))
		for i, e := range expanded {
			rows[i] = toRow(e, total, opts.UserID, origin)
		}
		return rows, nil
	}

	return []store.Row{toRow(draft, draft.Amount, opts.UserID, origin)}, nil
}

// resolveChannel routes the draft to the card or account channel. A
// credit-card payment goes to the card channel, everything else to the
// account channel; the two are never both populated for simple rows, with
// boleto the one method allowed to keep whichever was already set.
func resolveChannel(draft *models.Draft, opts Options) {
	if draft.PaymentMethod == models.PaymentBoleto && (draft.CardID != "" || draft.AccountID != "") {
		return
	}

	if draft.PaymentMethod == models.PaymentCreditCard {
		if draft.CardID == "" && draft.CardLastDigits != "" && opts.Reference != nil {
			if match := cardmatch.ByDigits(draft.CardLastDigits, opts.Reference.Cards); match != nil {
				draft.CardID = match.Card.ID
				draft.CardConfidence = match.Confidence
			}
		}
		draft.AccountID = ""
		return
	}

	draft.CardID = ""
	if draft.AccountID == "" {
		draft.AccountID = opts.DefaultAccountID
		if draft.AccountID == "" && opts.Reference != nil {
			draft.AccountID = opts.Reference.PrimaryAccount()
		}
	}
}

// resolveCategory maps a category id or name to the registered category id.
// Exact id match is preferred, then case-insensitive name lookup; an
// unknown value is cleared rather than persisted.
func resolveCategory(value string, ref *store.ReferenceData) string {
	if value == "" || ref == nil {
		return ""
	}
	for _, cat := range ref.Categories {
		if cat.ID == value {
			return cat.ID
		}
	}
	for _, cat := range ref.Categories {
		if strings.EqualFold(cat.Name, value) {
			return cat.ID
		}
	}
	return ""
}

func toRow(draft models.Draft, total decimal.Decimal, userID, origin string) store.Row {
	return store.Row{
		UserID:              userID,
		AccountID:           draft.AccountID,
		CardID:              draft.CardID,
		Type:                draft.Type,
		Description:         draft.Description,
		Amount:              draft.Amount,
		TotalAmount:         total,
		Category:            draft.Category,
		Date:                draft.Date,
		PaymentMethod:       draft.PaymentMethod,
		Origin:              origin,
		IsInstallment:       draft.IsInstallment,
		InstallmentCount:    draft.InstallmentCount,
		InstallmentNumber:   draft.InstallmentNumber,
		LastInstallmentDate: draft.LastInstallmentDate,
		CreatedAt:           time.Now(),
	}
}

func (imp *Importer) recordFailure(result *Result, row int, description string, err error) {
	rowErr := &parsererror.ImportRowError{Row: row, Description: description, Err: err}
	imp.logger.WithError(rowErr).Warn("Import row failed",
		logging.Field{Key: logging.FieldRow, Value: row},
	)
	result.Failures = append(result.Failures, Failure{
		Row:         row,
		Description: description,
		Message:     err.Error(),
	})
}
