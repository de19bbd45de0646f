package driving

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// LedgerService manages a document's editable field ledger.
type LedgerService interface {
	// List returns the document's fields in ledger order.
	List(ctx context.Context, documentID string) ([]domain.Field, error)

	// Edit updates one column of one field. Editing a field that does
	// not exist is a silent no-op.
	Edit(ctx context.Context, documentID, fieldID string, column domain.FieldColumn, value string) error

	// AddRow appends an empty field and returns its ID.
	AddRow(ctx context.Context, documentID string) (string, error)

	// DeleteRow removes a field. Deleting a field that does not exist
	// is a silent no-op.
	DeleteRow(ctx context.Context, documentID, fieldID string) error
}
