package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ensure LedgerService implements the interface.
var _ driving.LedgerService = (*LedgerService)(nil)

// LedgerService manages a document's editable field ledger.
type LedgerService struct {
	docStore driven.DocumentStore
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(docStore driven.DocumentStore) *LedgerService {
	return &LedgerService{docStore: docStore}
}

// seedFields builds the initial ledger from raw extraction candidates.
// Candidates missing a resolvable label or text are dropped, and duplicate
// labels keep the first occurrence. Seeding never fails.
func seedFields(candidates []domain.Candidate) []domain.Field {
	fields := make([]domain.Field, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		label := c.Label()
		text := c.Text()
		if label == "" || text == "" {
			continue
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		fields = append(fields, domain.Field{
			ID:    uuid.New().String(),
			Label: label,
			Text:  text,
		})
	}
	return fields
}

// List returns the document's fields in ledger order.
func (s *LedgerService) List(ctx context.Context, documentID string) ([]domain.Field, error) {
	return s.docStore.GetFields(ctx, documentID)
}

// Edit updates one column of one field. Editing a field that does not exist
// leaves the ledger untouched.
func (s *LedgerService) Edit(ctx context.Context, documentID, fieldID string, column domain.FieldColumn, value string) error {
	if !column.Valid() {
		return fmt.Errorf("%w: unknown column %q", domain.ErrInvalidInput, column)
	}

	fields, err := s.docStore.GetFields(ctx, documentID)
	if err != nil {
		return err
	}

	changed := false
	for i := range fields {
		if fields[i].ID != fieldID {
			continue
		}
		switch column {
		case domain.ColumnLabel:
			fields[i].Label = value
		case domain.ColumnText:
			fields[i].Text = value
		}
		changed = true
		break
	}
	if !changed {
		return nil
	}

	return s.docStore.PutFields(ctx, documentID, fields)
}

// AddRow appends an empty field and returns its ID.
func (s *LedgerService) AddRow(ctx context.Context, documentID string) (string, error) {
	fields, err := s.docStore.GetFields(ctx, documentID)
	if err != nil {
		return "", err
	}

	field := domain.Field{ID: uuid.New().String()}
	fields = append(fields, field)

	if err := s.docStore.PutFields(ctx, documentID, fields); err != nil {
		return "", err
	}
	return field.ID, nil
}

// DeleteRow removes a field. Deleting a field that does not exist leaves the
// ledger untouched.
func (s *LedgerService) DeleteRow(ctx context.Context, documentID, fieldID string) error {
	fields, err := s.docStore.GetFields(ctx, documentID)
	if err != nil {
		return err
	}

	kept := fields[:0]
	for _, f := range fields {
		if f.ID == fieldID {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == len(fields) {
		return nil
	}

	return s.docStore.PutFields(ctx, documentID, kept)
}
