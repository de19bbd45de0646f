package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ensure ValidationService implements the interface.
var _ driving.ValidationService = (*ValidationService)(nil)

// ValidationService computes coverage and builds validation snapshots.
type ValidationService struct {
	docStore     driven.DocumentStore
	historyStore driven.HistoryStore
	renderer     driven.ReportRenderer

	// now is swappable in tests.
	now func() time.Time
}

// NewValidationService creates a new validation service.
func NewValidationService(
	docStore driven.DocumentStore,
	historyStore driven.HistoryStore,
	renderer driven.ReportRenderer,
) *ValidationService {
	return &ValidationService{
		docStore:     docStore,
		historyStore: historyStore,
		renderer:     renderer,
		now:          time.Now,
	}
}

// Coverage derives the document's current coverage from its payload and live
// ledger. Nothing is cached; repeated calls after ledger edits reflect the
// edits immediately.
func (s *ValidationService) Coverage(ctx context.Context, documentID string) (*domain.Coverage, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	fields, err := s.docStore.GetFields(ctx, documentID)
	if err != nil {
		return nil, err
	}

	cov := &domain.Coverage{
		TotalExtracted: len(fields),
		TotalMandatory: domain.ChecklistSize,
	}
	if doc.Payload != nil {
		cov.FieldsIdentified = doc.Payload.Summary.FieldsPresent
		cov.CompletionRate = doc.Payload.Summary.CompletionPercentage
		cov.MissingFieldNames = doc.Payload.MissingFieldNames()
	}
	return cov, nil
}

// Build freezes the document's current state into a snapshot. The ledger is
// deep-copied; later edits never reach an existing snapshot.
func (s *ValidationService) Build(ctx context.Context, documentID string) (*domain.Snapshot, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	fields, err := s.docStore.GetFields(ctx, documentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	snap := &domain.Snapshot{
		ID:             fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.New().String()[:8]),
		Timestamp:      now.Format("2006-01-02 15:04:05"),
		FileName:       doc.Name,
		TotalExtracted: len(fields),
	}
	for _, f := range fields {
		snap.ExtractedFields = append(snap.ExtractedFields, domain.SnapshotField{
			Name:        f.Label,
			Value:       f.Text,
			IsMandatory: domain.Classify(f.Label, doc.Payload) == domain.ClassMandatoryPresent,
		})
	}
	if doc.Payload != nil {
		snap.FieldsIdentified = doc.Payload.Summary.FieldsPresent
		snap.CompletionRate = doc.Payload.Summary.CompletionPercentage
		snap.MissingFields = doc.Payload.MissingFieldNames()
	}
	return snap, nil
}

// Save builds a snapshot, renders its report, and prepends the pair to the
// session history. A render failure keeps nothing: no partial record enters
// the history.
func (s *ValidationService) Save(ctx context.Context, documentID string) (*domain.ValidationRecord, error) {
	snap, err := s.Build(ctx, documentID)
	if err != nil {
		return nil, err
	}

	report, err := s.renderer.Render(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	record := &domain.ValidationRecord{Snapshot: *snap, Report: report}
	if err := s.historyStore.Prepend(ctx, record); err != nil {
		return nil, fmt.Errorf("record validation: %w", err)
	}
	return record, nil
}

// History returns all recorded validations, newest first.
func (s *ValidationService) History(ctx context.Context) ([]domain.ValidationRecord, error) {
	return s.historyStore.List(ctx)
}

// Get retrieves a recorded validation by snapshot ID.
func (s *ValidationService) Get(ctx context.Context, snapshotID string) (*domain.ValidationRecord, error) {
	return s.historyStore.Get(ctx, snapshotID)
}
