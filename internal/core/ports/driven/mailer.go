package driven

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// ReportMailer delivers a rendered report to a recipient. Delivery is
// fire-and-forget; a failure never affects stored session state.
type ReportMailer interface {
	Send(ctx context.Context, msg domain.OutboundReport) error
}
