package store

import (
	"fmt"
	"os"

	"github.com/bragabarreto/financeai-pro-sub000/internal/models"

	"gopkg.in/yaml.v3"
)

// ReferenceData bundles the caller-supplied reference entities every
// matcher reads from.
type ReferenceData struct {
	UserIdentity string            `yaml:"user_identity"`
	Categories   []models.Category `yaml:"categories"`
	Accounts     []models.Account  `yaml:"accounts"`
	Cards        []models.Card     `yaml:"cards"`
}

// LoadReferenceData reads categories, accounts and cards from a YAML file.
func LoadReferenceData(path string) (*ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read reference data file: %w", err)
	}

	var ref ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("could not parse reference data file: %w", err)
	}
	return &ref, nil
}

// RowsToHistory converts persisted rows into the bounded window of history
// records the similarity matcher consumes. Only categorized rows qualify;
// the most recent rows come first and at most limit records are returned.
func RowsToHistory(rows []Row, limit int) []models.HistoryRecord {
	var records []models.HistoryRecord
	for i := len(rows) - 1; i >= 0 && len(records) < limit; i-- {
		row := rows[i]
		if row.Category == "" {
			continue
		}
		records = append(records, models.HistoryRecord{
			Description:   row.Description,
			Category:      row.Category,
			PaymentMethod: row.PaymentMethod,
			CardID:        row.CardID,
			AccountID:     row.AccountID,
		})
	}
	return records
}

// PrimaryAccount returns the primary account id, or the first account when
// none is flagged primary, or empty when the list is empty.
func (r *ReferenceData) PrimaryAccount() string {
	for _, account := range r.Accounts {
		if account.IsPrimary {
			return account.ID
		}
	}
	if len(r.Accounts) > 0 {
		return r.Accounts[0].ID
	}
	return ""
}
