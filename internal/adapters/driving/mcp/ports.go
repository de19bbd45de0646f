package mcp

import (
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session manages batches and documents.
	Session driving.SessionService

	// Validation computes coverage and saves snapshots.
	Validation driving.ValidationService

	// Ledger edits document fields. Optional; field tools degrade
	// gracefully without it.
	Ledger driving.LedgerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Validation == nil {
		return ErrMissingValidationService
	}
	return nil
}
