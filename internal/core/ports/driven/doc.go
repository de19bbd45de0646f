// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Session storage for documents, batches, and ledgers
//   - HistoryStore: Session storage for validation records
//   - ReportRenderer: Renders a snapshot to a PDF artifact
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Extractor: The external extraction backend. Without it, documents
//     cannot be processed, but already-registered ones remain editable.
//   - ReportMailer: The email-delivery webhook. Without it, the email
//     action is disabled; view/download remain available.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
