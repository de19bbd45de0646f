package driven

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// HistoryStore holds validation records for the session, newest first.
type HistoryStore interface {
	// Prepend inserts a record at the front of the history.
	Prepend(ctx context.Context, record *domain.ValidationRecord) error

	// Get retrieves a record by snapshot ID.
	Get(ctx context.Context, snapshotID string) (*domain.ValidationRecord, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]domain.ValidationRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
