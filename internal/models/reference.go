package models

// Category is a caller-owned reference entity. The pipeline only reads it;
// a resolved draft category is always drawn from the caller's set.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"` // expense, income or investment
}

// Account is a caller-owned reference entity.
type Account struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	IsPrimary bool   `yaml:"is_primary"`
}

// Card is a caller-owned reference entity. LastDigitsList carries up to
// five secondary 4-digit groups for additional cards on the same account.
type Card struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	LastDigits     string   `yaml:"last_digits"`
	LastDigitsList []string `yaml:"last_digits_list"`
}

// HistoryRecord is one of the user's past categorized transactions, used by
// the historical similarity matcher to backfill fields on new drafts.
type HistoryRecord struct {
	Description   string
	Category      string
	PaymentMethod string
	CardID        string
	AccountID     string
}
