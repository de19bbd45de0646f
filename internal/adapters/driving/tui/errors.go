package tui

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingLedgerService is returned when the ledger service is not provided.
var ErrMissingLedgerService = errors.New("tui: ledger service is required")

// ErrMissingValidationService is returned when the validation service is not provided.
var ErrMissingValidationService = errors.New("tui: validation service is required")
