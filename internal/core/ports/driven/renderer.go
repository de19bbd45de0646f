package driven

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// ReportRenderer turns a validation snapshot into a finished PDF report.
type ReportRenderer interface {
	Render(ctx context.Context, snapshot *domain.Snapshot) ([]byte, error)
}
