package services

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService exposes the rendered report of a stored validation.
type ReportService struct {
	historyStore driven.HistoryStore
	mailer       driven.ReportMailer
}

// NewReportService creates a new report service.
func NewReportService(historyStore driven.HistoryStore, mailer driven.ReportMailer) *ReportService {
	return &ReportService{historyStore: historyStore, mailer: mailer}
}

// View writes the report to a temporary file and opens it in the system's
// default PDF viewer.
func (s *ReportService) View(ctx context.Context, snapshotID string) error {
	record, err := s.historyStore.Get(ctx, snapshotID)
	if err != nil {
		return err
	}

	path := filepath.Join(os.TempDir(), reportFileName(record.Snapshot.FileName))
	if err := os.WriteFile(path, record.Report, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return openPath(path)
}

// SaveTo writes the report into dir under a sanitised file name and returns
// the written path.
func (s *ReportService) SaveTo(ctx context.Context, snapshotID, dir string) (string, error) {
	record, err := s.historyStore.Get(ctx, snapshotID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, reportFileName(record.Snapshot.FileName))
	if err := os.WriteFile(path, record.Report, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Email delivers the report to the recipient. Empty subject or message fall
// back to the default templates. Delivery failures leave the stored record
// untouched.
func (s *ReportService) Email(ctx context.Context, snapshotID, to, subject, message string) error {
	if s.mailer == nil {
		return fmt.Errorf("%w: no email webhook configured", domain.ErrDeliveryFailed)
	}
	record, err := s.historyStore.Get(ctx, snapshotID)
	if err != nil {
		return err
	}
	if subject == "" {
		subject = fmt.Sprintf("Invoice Validation Report - %s", record.Snapshot.FileName)
	}
	if message == "" {
		message = fmt.Sprintf(
			"Please find attached the validation report for %s.\n\nCompletion rate: %.1f%%\nGenerated: %s",
			record.Snapshot.FileName, record.Snapshot.CompletionRate, record.Snapshot.Timestamp,
		)
	}

	msg := domain.OutboundReport{
		To:       to,
		Subject:  subject,
		Message:  message,
		Snapshot: record.Snapshot,
		Report:   record.Report,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}

// reportFileName derives a filesystem-safe report name from a document name.
func reportFileName(documentName string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, documentName)
	return safe + "_validation_report.pdf"
}

// openPath opens a file in the platform's default application.
func openPath(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
