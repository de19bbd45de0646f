// Package mcp provides an MCP (Model Context Protocol) server adapter for
// veridoc. It lets AI assistants inspect processed invoices, query coverage,
// and save validations.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")

// ErrMissingValidationService is returned when the validation service is not provided.
var ErrMissingValidationService = errors.New("mcp: validation service is required")
