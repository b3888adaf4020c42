package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceData(t *testing.T) {
	content := `user_identity: "José Braga"
categories:
  - id: cat-1
    name: Alimentação
    type: expense
  - id: cat-2
    name: Salário
    type: income
accounts:
  - id: acc-1
    name: Conta Corrente
    is_primary: true
  - id: acc-2
    name: Poupança
cards:
  - id: card-1
    name: Nubank
    last_digits: "1234"
    last_digits_list: ["9999"]
`
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	ref, err := LoadReferenceData(path)
	require.NoError(t, err)

	assert.Equal(t, "José Braga", ref.UserIdentity)
	require.Len(t, ref.Categories, 2)
	assert.Equal(t, "Alimentação", ref.Categories[0].Name)
	require.Len(t, ref.Accounts, 2)
	require.Len(t, ref.Cards, 1)
	assert.Equal(t, []string{"9999"}, ref.Cards[0].LastDigitsList)
}

func TestLoadReferenceData_Errors(t *testing.T) {
	_, err := LoadReferenceData("missing.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {not: [valid"), 0600))
	_, err = LoadReferenceData(path)
	assert.Error(t, err)
}

func TestPrimaryAccount(t *testing.T) {
	flagged := &ReferenceData{Accounts: []models.Account{
		{ID: "acc-1", Name: "Corrente"},
		{ID: "acc-2", Name: "Principal", IsPrimary: true},
	}}
	assert.Equal(t, "acc-2", flagged.PrimaryAccount())

	unflagged := &ReferenceData{Accounts: []models.Account{
		{ID: "acc-1", Name: "Corrente"},
	}}
	assert.Equal(t, "acc-1", unflagged.PrimaryAccount())

	empty := &ReferenceData{}
	assert.Equal(t, "", empty.PrimaryAccount())
}

func TestRowsToHistory(t *testing.T) {
	rows := []Row{
		{Description: "uncategorized", Category: ""},
		{Description: "oldest", Category: "Alimentação", PaymentMethod: "pix"},
		{Description: "middle", Category: "Transporte"},
		{Description: "newest", Category: "Saúde", CardID: "card-1"},
	}

	records := RowsToHistory(rows, 2)
	require.Len(t, records, 2)
	// Most recent first, bounded by the limit, uncategorized rows skipped.
	assert.Equal(t, "newest", records[0].Description)
	assert.Equal(t, "card-1", records[0].CardID)
	assert.Equal(t, "middle", records[1].Description)

	all := RowsToHistory(rows, 10)
	assert.Len(t, all, 3)
	assert.Empty(t, RowsToHistory(nil, 10))
}
