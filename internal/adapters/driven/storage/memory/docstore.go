package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Everything it holds is session-scoped; nothing survives process exit.
type DocumentStore struct {
	mu           sync.RWMutex
	documents    map[string]domain.Document
	fields       map[string][]domain.Field
	batches      []domain.Batch
	currentBatch string
	nextFile     int
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		fields:    make(map[string][]domain.Field),
		nextFile:  1,
	}
}

// SaveBatch stores a batch, its documents, and their seeded ledgers under a
// single lock so the batch never appears partially.
func (s *DocumentStore) SaveBatch(_ context.Context, batch *domain.Batch, docs []domain.Document, ledgers map[string][]domain.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, *batch)
	for _, doc := range docs {
		s.documents[doc.ID] = doc
		s.fields[doc.ID] = copyFields(ledgers[doc.ID])
	}
	return nil
}

// GetBatch retrieves a batch by ID.
func (s *DocumentStore) GetBatch(_ context.Context, id string) (*domain.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.batches {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListBatches returns all batches in registration order.
func (s *DocumentStore) ListBatches(_ context.Context) ([]domain.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Batch, len(s.batches))
	copy(out, s.batches)
	return out, nil
}

// CurrentBatch returns the current batch ID, or "" if none.
func (s *DocumentStore) CurrentBatch(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentBatch, nil
}

// SetCurrentBatch changes the current batch selection.
func (s *DocumentStore) SetCurrentBatch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentBatch = id
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns documents for a batch in file-number order.
func (s *DocumentStore) ListDocuments(_ context.Context, batchID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []domain.Document
	for _, doc := range s.documents {
		if doc.BatchID == batchID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FileNumber < docs[j].FileNumber
	})
	return docs, nil
}

// GetFields returns a copy of the document's field ledger.
func (s *DocumentStore) GetFields(_ context.Context, documentID string) ([]domain.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.documents[documentID]; !ok {
		return nil, domain.ErrNotFound
	}
	return copyFields(s.fields[documentID]), nil
}

// PutFields replaces the document's field ledger.
func (s *DocumentStore) PutFields(_ context.Context, documentID string, fields []domain.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[documentID]; !ok {
		return domain.ErrNotFound
	}
	s.fields[documentID] = copyFields(fields)
	return nil
}

// NextFileNumbers reserves n sequential file numbers and returns the first.
func (s *DocumentStore) NextFileNumbers(_ context.Context, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	first := s.nextFile
	s.nextFile += n
	return first, nil
}

// BatchCount returns the number of batches registered so far.
func (s *DocumentStore) BatchCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches), nil
}

// Reset clears all session state and rewinds the file-number counter to 1.
func (s *DocumentStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]domain.Document)
	s.fields = make(map[string][]domain.Field)
	s.batches = nil
	s.currentBatch = ""
	s.nextFile = 1
	return nil
}

func copyFields(fields []domain.Field) []domain.Field {
	if fields == nil {
		return nil
	}
	out := make([]domain.Field, len(fields))
	copy(out, fields)
	return out
}
