package driving

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// ValidationService computes coverage and builds validation snapshots.
type ValidationService interface {
	// Coverage derives the document's current coverage from its payload
	// and live ledger.
	Coverage(ctx context.Context, documentID string) (*domain.Coverage, error)

	// Build freezes the document's current state into a snapshot without
	// recording it.
	Build(ctx context.Context, documentID string) (*domain.Snapshot, error)

	// Save builds a snapshot, renders its report, and prepends the pair
	// to the session history.
	Save(ctx context.Context, documentID string) (*domain.ValidationRecord, error)

	// History returns all recorded validations, newest first.
	History(ctx context.Context) ([]domain.ValidationRecord, error)

	// Get retrieves a recorded validation by snapshot ID.
	Get(ctx context.Context, snapshotID string) (*domain.ValidationRecord, error)
}
