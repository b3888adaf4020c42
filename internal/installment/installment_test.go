package installment

import (
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	draft := models.Draft{
		Date:        "2025-01-15",
		Description: "Notebook Dell",
		Type:        models.TypeExpense,
	}

	rows, err := Expand(draft, decimal.RequireFromString("3000.00"), 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	expected := decimal.RequireFromString("1000")
	for i, row := range rows {
		assert.True(t, row.Amount.Equal(expected), "row %d amount = %s", i, row.Amount)
		assert.True(t, row.IsInstallment)
		assert.Equal(t, 3, row.InstallmentCount)
		assert.Equal(t, i+1, row.InstallmentNumber)
		assert.Equal(t, "2025-03-15", row.LastInstallmentDate)
	}

	assert.Equal(t, "2025-01-15", rows[0].Date)
	assert.Equal(t, "2025-02-15", rows[1].Date)
	assert.Equal(t, "2025-03-15", rows[2].Date)

	assert.Equal(t, "Notebook Dell (1/3)", rows[0].Description)
	assert.Equal(t, "Notebook Dell (2/3)", rows[1].Description)
	assert.Equal(t, "Notebook Dell (3/3)", rows[2].Description)
}

func TestExpand_SumEqualsTotal(t *testing.T) {
	draft := models.Draft{Date: "2025-11-20", Description: "Geladeira"}
	total := decimal.RequireFromString("1000.00")

	rows, err := Expand(draft, total, 4)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Amount)
	}
	assert.True(t, sum.Equal(total), "sum = %s, want %s", sum, total)

	assert.Equal(t, "2025-11-20", rows[0].Date)
	assert.Equal(t, "2025-12-20", rows[1].Date)
	assert.Equal(t, "2026-01-20", rows[2].Date)
	assert.Equal(t, "2026-02-20", rows[3].Date)
}

func TestExpand_SumWithinToleranceForInexactDivision(t *testing.T) {
	draft := models.Draft{Date: "2025-01-15", Description: "Fone de ouvido"}
	total := decimal.RequireFromString("100.00")

	// 100/3 does not divide evenly; the exact-division drift must stay
	// inside the 0.01 tolerance.
	rows, err := Expand(draft, total, 3)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Amount)
	}
	drift := total.Sub(sum).Abs()
	assert.True(t, drift.LessThanOrEqual(decimal.RequireFromString("0.01")),
		"drift = %s", drift)
	assert.True(t, rows[0].Amount.Equal(rows[2].Amount))
}

func TestExpand_MonthEndRollover(t *testing.T) {
	draft := models.Draft{Date: "2025-01-31", Description: "Sofá"}

	rows, err := Expand(draft, decimal.RequireFromString("300.00"), 3)
	require.NoError(t, err)

	// AddDate normalizes Jan 31 + 1 month to March 3 (2025 is not a leap
	// year), and Jan 31 + 2 months to March 31.
	assert.Equal(t, "2025-01-31", rows[0].Date)
	assert.Equal(t, "2025-03-03", rows[1].Date)
	assert.Equal(t, "2025-03-31", rows[2].Date)
}

func TestExpand_Errors(t *testing.T) {
	draft := models.Draft{Date: "2025-01-15", Description: "X"}

	_, err := Expand(draft, decimal.NewFromInt(100), 1)
	assert.Error(t, err)

	_, err = Expand(models.Draft{Description: "X"}, decimal.NewFromInt(100), 2)
	assert.Error(t, err)

	_, err = Expand(models.Draft{Date: "garbage"}, decimal.NewFromInt(100), 2)
	assert.Error(t, err)
}
