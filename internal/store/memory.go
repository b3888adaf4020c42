package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory TransactionStore used by the CLI's dry-run
// mode and by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	rows []Row

	// InsertErr, when set, is returned for every row whose description
	// matches FailDescription, exercising per-row failure isolation in
	// tests.
	InsertErr       error
	FailDescription string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert stores the rows, assigning each a fresh identifier.
func (s *MemoryStore) Insert(_ context.Context, rows []Row) ([]InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]InsertResult, len(rows))
	for i, row := range rows {
		if s.InsertErr != nil && row.Description == s.FailDescription {
			results[i] = InsertResult{Err: s.InsertErr}
			continue
		}
		row.ID = uuid.New().String()
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now()
		}
		s.rows = append(s.rows, row)
		results[i] = InsertResult{ID: row.ID}
	}
	return results, nil
}

// ListByAccount returns all rows of one account.
func (s *MemoryStore) ListByAccount(_ context.Context, userID, accountID string) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []Row
	for _, row := range s.rows {
		if row.UserID == userID && row.AccountID == accountID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// DeleteCreatedBetween removes rows created within the window.
func (s *MemoryStore) DeleteCreatedBetween(_ context.Context, userID string, from, to time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Row
	deleted := 0
	for _, row := range s.rows {
		if row.UserID == userID && !row.CreatedAt.Before(from) && !row.CreatedAt.After(to) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return deleted, nil
}

// Len returns the number of stored rows.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// All returns a copy of every stored row.
func (s *MemoryStore) All() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}
