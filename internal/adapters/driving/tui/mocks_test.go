package tui

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	batch     *domain.Batch
	documents []domain.Document
	err       error
}

func (m *mockSessionService) Process(_ context.Context, _ []string) (*domain.Batch, []domain.Document, error) {
	return m.batch, m.documents, m.err
}

func (m *mockSessionService) RegisterBatch(_ context.Context, _ []domain.ExtractionResult) (*domain.Batch, []domain.Document, error) {
	return m.batch, m.documents, m.err
}

func (m *mockSessionService) ListBatches(_ context.Context) ([]domain.Batch, error) {
	return nil, m.err
}

func (m *mockSessionService) SelectBatch(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSessionService) CurrentBatch(_ context.Context) (*domain.Batch, error) {
	if m.batch == nil {
		return nil, domain.ErrNoCurrentBatch
	}
	return m.batch, m.err
}

func (m *mockSessionService) ListDocuments(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockSessionService) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockSessionService) ClearHistory(_ context.Context) error {
	return m.err
}

// mockLedgerService is a mock implementation of driving.LedgerService.
type mockLedgerService struct {
	fields []domain.Field
	err    error
}

func (m *mockLedgerService) List(_ context.Context, _ string) ([]domain.Field, error) {
	return m.fields, m.err
}

func (m *mockLedgerService) Edit(_ context.Context, _, _ string, _ domain.FieldColumn, _ string) error {
	return m.err
}

func (m *mockLedgerService) AddRow(_ context.Context, _ string) (string, error) {
	return "new-field", m.err
}

func (m *mockLedgerService) DeleteRow(_ context.Context, _, _ string) error {
	return m.err
}

// mockValidationService is a mock implementation of driving.ValidationService.
type mockValidationService struct {
	coverage *domain.Coverage
	record   *domain.ValidationRecord
	err      error
}

func (m *mockValidationService) Coverage(_ context.Context, _ string) (*domain.Coverage, error) {
	return m.coverage, m.err
}

func (m *mockValidationService) Build(_ context.Context, _ string) (*domain.Snapshot, error) {
	return nil, m.err
}

func (m *mockValidationService) Save(_ context.Context, _ string) (*domain.ValidationRecord, error) {
	return m.record, m.err
}

func (m *mockValidationService) History(_ context.Context) ([]domain.ValidationRecord, error) {
	return nil, m.err
}

func (m *mockValidationService) Get(_ context.Context, _ string) (*domain.ValidationRecord, error) {
	return m.record, m.err
}
