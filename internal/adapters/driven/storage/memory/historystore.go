package memory

import (
	"context"
	"sync"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Records are kept newest first.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.ValidationRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Prepend inserts a record at the front of the history.
func (s *HistoryStore) Prepend(_ context.Context, record *domain.ValidationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.ValidationRecord{*record}, s.records...)
	return nil
}

// Get retrieves a record by snapshot ID.
func (s *HistoryStore) Get(_ context.Context, snapshotID string) (*domain.ValidationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.Snapshot.ID == snapshotID {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all records, newest first.
func (s *HistoryStore) List(_ context.Context) ([]domain.ValidationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ValidationRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Clear removes all records.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
