// Package domain defines the core business entities for veridoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A processed invoice with its extraction payload
//   - Field: An editable row in a document's field ledger
//   - Batch: A group of documents processed together
//   - Coverage: Derived compliance statistics for a document
//   - Snapshot: An immutable, timestamped validation record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
