// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDocuments lists the documents of the current batch.
	ViewDocuments ViewType = iota
	// ViewFields is the field ledger editor for one document.
	ViewFields
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDocuments:
		return "documents"
	case ViewFields:
		return "fields"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DocumentsLoaded carries the documents of the current batch.
type DocumentsLoaded struct {
	BatchID   string
	Documents []domain.Document
	Err       error
}

// DocumentSelected signals a document was chosen for review.
type DocumentSelected struct {
	Document domain.Document
}

// FieldsLoaded carries a document's ledger rows.
type FieldsLoaded struct {
	DocumentID string
	Fields     []domain.Field
	Err        error
}

// FieldEdited signals a ledger mutation completed. The ledger and
// coverage must be reloaded.
type FieldEdited struct {
	DocumentID string
	Err        error
}

// CoverageUpdated carries the recomputed coverage for a document.
type CoverageUpdated struct {
	DocumentID string
	Coverage   *domain.Coverage
	Err        error
}

// SnapshotSaved signals a validation snapshot was recorded.
type SnapshotSaved struct {
	Record *domain.ValidationRecord
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
