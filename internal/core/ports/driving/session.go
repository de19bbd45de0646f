package driving

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// SessionService manages batches and documents for the current session.
type SessionService interface {
	// Process sends the given PDF files to the extraction backend and
	// registers the results as a new batch. The batch becomes current.
	Process(ctx context.Context, paths []string) (*domain.Batch, []domain.Document, error)

	// RegisterBatch turns extraction results into a batch of documents
	// with seeded field ledgers. The batch appears atomically and
	// becomes the current selection.
	RegisterBatch(ctx context.Context, results []domain.ExtractionResult) (*domain.Batch, []domain.Document, error)

	// ListBatches returns all batches in registration order.
	ListBatches(ctx context.Context) ([]domain.Batch, error)

	// SelectBatch changes the current batch. Documents and ledgers are
	// untouched.
	SelectBatch(ctx context.Context, batchID string) error

	// CurrentBatch returns the current batch, or ErrNoCurrentBatch.
	CurrentBatch(ctx context.Context) (*domain.Batch, error)

	// ListDocuments returns the documents of a batch in file-number
	// order. An empty batchID means the current batch.
	ListDocuments(ctx context.Context, batchID string) ([]domain.Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// ClearHistory resets the whole session: history, documents,
	// ledgers, batches, and the file-number counter.
	ClearHistory(ctx context.Context) error
}
