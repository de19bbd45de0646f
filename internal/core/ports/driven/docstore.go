package driven

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// DocumentStore holds the session's documents, batches, and field ledgers.
// Backed by in-memory storage; nothing outlives the session.
type DocumentStore interface {
	// SaveBatch stores a batch together with its documents and their
	// seeded ledgers. The batch appears atomically, never partially.
	SaveBatch(ctx context.Context, batch *domain.Batch, docs []domain.Document, ledgers map[string][]domain.Field) error

	// GetBatch retrieves a batch by ID.
	GetBatch(ctx context.Context, id string) (*domain.Batch, error)

	// ListBatches returns all batches in registration order.
	ListBatches(ctx context.Context) ([]domain.Batch, error)

	// CurrentBatch returns the current batch ID, or "" if none.
	CurrentBatch(ctx context.Context) (string, error)

	// SetCurrentBatch changes the current batch selection.
	SetCurrentBatch(ctx context.Context, id string) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents for a batch in file-number order.
	ListDocuments(ctx context.Context, batchID string) ([]domain.Document, error)

	// GetFields returns a copy of the document's field ledger.
	GetFields(ctx context.Context, documentID string) ([]domain.Field, error)

	// PutFields replaces the document's field ledger.
	PutFields(ctx context.Context, documentID string, fields []domain.Field) error

	// NextFileNumbers reserves n sequential file numbers and returns the
	// first. Numbers are monotonic for the whole session.
	NextFileNumbers(ctx context.Context, n int) (int, error)

	// BatchCount returns the number of batches registered so far.
	BatchCount(ctx context.Context) (int, error)

	// Reset clears documents, ledgers, batches, the current selection,
	// and the file-number counter.
	Reset(ctx context.Context) error
}
