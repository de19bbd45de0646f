package driving

import "context"

// ReportService exposes the rendered report of a stored validation.
type ReportService interface {
	// View writes the report to a temporary file and opens it in the
	// system's default viewer.
	View(ctx context.Context, snapshotID string) error

	// SaveTo writes the report into dir under a sanitised file name and
	// returns the written path.
	SaveTo(ctx context.Context, snapshotID, dir string) (string, error)

	// Email delivers the report to the recipient. Empty subject or
	// message fall back to the default templates.
	Email(ctx context.Context, snapshotID, to, subject, message string) error
}
