package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages batches and documents for the current session.
type SessionService struct {
	docStore     driven.DocumentStore
	historyStore driven.HistoryStore
	extractor    driven.Extractor
}

// NewSessionService creates a new session service.
func NewSessionService(
	docStore driven.DocumentStore,
	historyStore driven.HistoryStore,
	extractor driven.Extractor,
) *SessionService {
	return &SessionService{
		docStore:     docStore,
		historyStore: historyStore,
		extractor:    extractor,
	}
}

// Process sends the given PDF files to the extraction backend and registers
// the results as a new batch.
func (s *SessionService) Process(ctx context.Context, paths []string) (*domain.Batch, []domain.Document, error) {
	if s.extractor == nil {
		return nil, nil, domain.ErrExtractorUnavailable
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w: no files given", domain.ErrInvalidInput)
	}

	results, err := s.extractor.Extract(ctx, paths)
	if err != nil {
		return nil, nil, fmt.Errorf("extract files: %w", err)
	}

	return s.RegisterBatch(ctx, results)
}

// RegisterBatch turns extraction results into a batch of documents with
// seeded field ledgers. Per-file backend failures are skipped; the batch is
// registered from the files that succeeded. The batch appears in the store
// atomically and becomes the current selection.
func (s *SessionService) RegisterBatch(ctx context.Context, results []domain.ExtractionResult) (*domain.Batch, []domain.Document, error) {
	ok := make([]domain.ExtractionResult, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			continue
		}
		ok = append(ok, r)
	}
	if len(ok) == 0 {
		return nil, nil, fmt.Errorf("%w: no files were processed successfully", domain.ErrInvalidInput)
	}

	first, err := s.docStore.NextFileNumbers(ctx, len(ok))
	if err != nil {
		return nil, nil, fmt.Errorf("reserve file numbers: %w", err)
	}
	batchCount, err := s.docStore.BatchCount(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("count batches: %w", err)
	}

	batch := &domain.Batch{
		ID:    uuid.New().String(),
		Label: fmt.Sprintf("Batch %d (%d files)", batchCount+1, len(ok)),
	}

	docs := make([]domain.Document, 0, len(ok))
	ledgers := make(map[string][]domain.Field, len(ok))
	for i, r := range ok {
		doc := domain.Document{
			ID:            uuid.New().String(),
			BatchID:       batch.ID,
			FileNumber:    first + i,
			Name:          fmt.Sprintf("Invoice-%d", first+i),
			Summary:       r.Summary,
			MarkdownPages: r.MarkdownPages,
			Payload:       r.StructuredData,
			Candidates:    r.Extractions,
		}
		docs = append(docs, doc)
		ledgers[doc.ID] = seedFields(r.Extractions)
	}

	if err := s.docStore.SaveBatch(ctx, batch, docs, ledgers); err != nil {
		return nil, nil, fmt.Errorf("save batch: %w", err)
	}
	if err := s.docStore.SetCurrentBatch(ctx, batch.ID); err != nil {
		return nil, nil, fmt.Errorf("select batch: %w", err)
	}

	return batch, docs, nil
}

// ListBatches returns all batches in registration order.
func (s *SessionService) ListBatches(ctx context.Context) ([]domain.Batch, error) {
	return s.docStore.ListBatches(ctx)
}

// SelectBatch changes the current batch.
func (s *SessionService) SelectBatch(ctx context.Context, batchID string) error {
	if _, err := s.docStore.GetBatch(ctx, batchID); err != nil {
		return fmt.Errorf("get batch: %w", err)
	}
	return s.docStore.SetCurrentBatch(ctx, batchID)
}

// CurrentBatch returns the current batch, or ErrNoCurrentBatch when nothing
// has been processed or selected yet.
func (s *SessionService) CurrentBatch(ctx context.Context) (*domain.Batch, error) {
	id, err := s.docStore.CurrentBatch(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrNoCurrentBatch
	}
	return s.docStore.GetBatch(ctx, id)
}

// ListDocuments returns the documents of a batch in file-number order.
// An empty batchID means the current batch.
func (s *SessionService) ListDocuments(ctx context.Context, batchID string) ([]domain.Document, error) {
	if batchID == "" {
		batch, err := s.CurrentBatch(ctx)
		if err != nil {
			return nil, err
		}
		batchID = batch.ID
	}
	return s.docStore.ListDocuments(ctx, batchID)
}

// GetDocument retrieves a document by ID.
func (s *SessionService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// ClearHistory resets the whole session. Validation history, documents,
// ledgers, and batches are dropped and the file-number counter starts over
// at 1. This is the only operation that rewinds the counter.
func (s *SessionService) ClearHistory(ctx context.Context) error {
	if err := s.historyStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := s.docStore.Reset(ctx); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}
