package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/storage/memory"
	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// stubMailer records the last delivery request.
type stubMailer struct {
	sent []domain.OutboundReport
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg domain.OutboundReport) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newReportFixture(t *testing.T, mailer *stubMailer) (*ReportService, *memory.HistoryStore) {
	t.Helper()
	historyStore := memory.NewHistoryStore()
	err := historyStore.Prepend(context.Background(), &domain.ValidationRecord{
		Snapshot: domain.Snapshot{
			ID:             "snap-1",
			Timestamp:      "2025-06-01 12:00:00",
			FileName:       "Invoice-3",
			CompletionRate: 85,
		},
		Report: []byte("%PDF-1.4 report"),
	})
	require.NoError(t, err)

	if mailer == nil {
		return NewReportService(historyStore, nil), historyStore
	}
	return NewReportService(historyStore, mailer), historyStore
}

func TestReportService_SaveTo_WritesArtifact(t *testing.T) {
	service, _ := newReportFixture(t, nil)
	dir := t.TempDir()

	path, err := service.SaveTo(context.Background(), "snap-1", dir)
	require.NoError(t, err)

	assert.Contains(t, path, "Invoice_3_validation_report.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 report"), data)
}

func TestReportService_SaveTo_UnknownSnapshot(t *testing.T) {
	service, _ := newReportFixture(t, nil)

	_, err := service.SaveTo(context.Background(), "missing", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportService_Email_DefaultTemplates(t *testing.T) {
	mailer := &stubMailer{}
	service, _ := newReportFixture(t, mailer)

	err := service.Email(context.Background(), "snap-1", "finance@example.com", "", "")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "finance@example.com", msg.To)
	assert.Equal(t, "Invoice Validation Report - Invoice-3", msg.Subject)
	assert.Contains(t, msg.Message, "Invoice-3")
	assert.Contains(t, msg.Message, "85.0%")
	assert.Equal(t, []byte("%PDF-1.4 report"), msg.Report)
}

func TestReportService_Email_CustomSubjectAndMessage(t *testing.T) {
	mailer := &stubMailer{}
	service, _ := newReportFixture(t, mailer)

	err := service.Email(context.Background(), "snap-1", "finance@example.com", "April invoices", "See attached.")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "April invoices", mailer.sent[0].Subject)
	assert.Equal(t, "See attached.", mailer.sent[0].Message)
}

func TestReportService_Email_NoMailerConfigured(t *testing.T) {
	service, _ := newReportFixture(t, nil)

	err := service.Email(context.Background(), "snap-1", "finance@example.com", "", "")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestReportService_Email_DeliveryFailureKeepsRecord(t *testing.T) {
	mailer := &stubMailer{err: errors.New("webhook returned 502")}
	service, historyStore := newReportFixture(t, mailer)

	err := service.Email(context.Background(), "snap-1", "finance@example.com", "", "")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)

	// The stored record is untouched by a failed delivery.
	record, err := historyStore.Get(context.Background(), "snap-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 report"), record.Report)
}

func TestReportFileName_Sanitises(t *testing.T) {
	assert.Equal(t, "Invoice_3_validation_report.pdf", reportFileName("Invoice-3"))
	assert.Equal(t, "my_invoice_2025_pdf_validation_report.pdf", reportFileName("my invoice/2025.pdf"))
}
