package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// withServices installs the given services for one test and restores
// the previous wiring afterwards.
func withServices(t *testing.T, s Services) {
	t.Helper()

	prev := Services{
		Session:    sessionService,
		Ledger:     ledgerService,
		Validation: validationService,
		Report:     reportService,
		Config:     configStore,
	}
	SetServices(s)
	t.Cleanup(func() {
		SetServices(prev)
	})
}

// mockSessionService is a configurable driving.SessionService.
type mockSessionService struct {
	batch     *domain.Batch
	batches   []domain.Batch
	documents []domain.Document
	document  *domain.Document
	selected  string
	cleared   bool
	err       error
}

func (m *mockSessionService) Process(_ context.Context, _ []string) (*domain.Batch, []domain.Document, error) {
	return m.batch, m.documents, m.err
}

func (m *mockSessionService) RegisterBatch(_ context.Context, _ []domain.ExtractionResult) (*domain.Batch, []domain.Document, error) {
	return m.batch, m.documents, m.err
}

func (m *mockSessionService) ListBatches(_ context.Context) ([]domain.Batch, error) {
	return m.batches, m.err
}

func (m *mockSessionService) SelectBatch(_ context.Context, batchID string) error {
	if m.err != nil {
		return m.err
	}
	m.selected = batchID
	return nil
}

func (m *mockSessionService) CurrentBatch(_ context.Context) (*domain.Batch, error) {
	if m.batch == nil {
		return nil, domain.ErrNoCurrentBatch
	}
	return m.batch, nil
}

func (m *mockSessionService) ListDocuments(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockSessionService) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	if m.document == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, m.err
}

func (m *mockSessionService) ClearHistory(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	return nil
}

// mockLedgerService is a configurable driving.LedgerService.
type mockLedgerService struct {
	fields     []domain.Field
	edits      []string
	addedTo    string
	deletedIDs []string
	err        error
}

func (m *mockLedgerService) List(_ context.Context, _ string) ([]domain.Field, error) {
	return m.fields, m.err
}

func (m *mockLedgerService) Edit(_ context.Context, _, fieldID string, column domain.FieldColumn, value string) error {
	if m.err != nil {
		return m.err
	}
	m.edits = append(m.edits, fieldID+":"+string(column)+"="+value)
	return nil
}

func (m *mockLedgerService) AddRow(_ context.Context, documentID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.addedTo = documentID
	return "new-field-id", nil
}

func (m *mockLedgerService) DeleteRow(_ context.Context, _, fieldID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, fieldID)
	return nil
}

// mockValidationService is a configurable driving.ValidationService.
type mockValidationService struct {
	coverage *domain.Coverage
	snapshot *domain.Snapshot
	record   *domain.ValidationRecord
	records  []domain.ValidationRecord
	err      error
}

func (m *mockValidationService) Coverage(_ context.Context, _ string) (*domain.Coverage, error) {
	return m.coverage, m.err
}

func (m *mockValidationService) Build(_ context.Context, _ string) (*domain.Snapshot, error) {
	return m.snapshot, m.err
}

func (m *mockValidationService) Save(_ context.Context, _ string) (*domain.ValidationRecord, error) {
	return m.record, m.err
}

func (m *mockValidationService) History(_ context.Context) ([]domain.ValidationRecord, error) {
	return m.records, m.err
}

func (m *mockValidationService) Get(_ context.Context, _ string) (*domain.ValidationRecord, error) {
	return m.record, m.err
}

// mockReportService is a configurable driving.ReportService.
type mockReportService struct {
	savedPath string
	emailedTo string
	err       error
}

func (m *mockReportService) View(_ context.Context, _ string) error {
	return m.err
}

func (m *mockReportService) SaveTo(_ context.Context, _ string, _ string) (string, error) {
	return m.savedPath, m.err
}

func (m *mockReportService) Email(_ context.Context, _ string, to string, _ string, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.emailedTo = to
	return nil
}
