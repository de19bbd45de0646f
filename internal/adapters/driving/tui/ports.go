// Package tui provides the interactive field review interface for veridoc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session provides batch and document access.
	Session driving.SessionService

	// Ledger edits document field ledgers.
	Ledger driving.LedgerService

	// Validation computes live coverage and saves snapshots.
	Validation driving.ValidationService

	// Report delivers rendered reports. Optional; saving still works
	// without it.
	Report driving.ReportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Ledger == nil {
		return ErrMissingLedgerService
	}
	if p.Validation == nil {
		return ErrMissingValidationService
	}
	return nil
}
