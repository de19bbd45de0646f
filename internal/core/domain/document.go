package domain

import "sort"

// Document represents one processed invoice.
// It is owned by the session and is immutable apart from its field
// ledger, which is managed separately (see Field).
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// BatchID links to the Batch this document arrived in.
	BatchID string

	// FileNumber is the sequential number assigned on registration.
	// Numbers are monotonic across the whole session.
	FileNumber int

	// Name is the display name, e.g. "Invoice-3".
	Name string

	// Summary is the backend's one-line extraction summary.
	Summary string

	// MarkdownPages holds the raw per-page markdown. Opaque to the core;
	// surfaced verbatim for inspection.
	MarkdownPages []string

	// Payload is the structured extraction payload. May be nil when the
	// backend produced no structured data.
	Payload *StructuredPayload

	// Candidates are the raw extraction candidates used to seed the
	// field ledger. Key names vary by producer; read via Candidate.
	Candidates []Candidate
}

// StructuredPayload is the backend-supplied structured view of a document.
type StructuredPayload struct {
	// MandatoryFields maps each checklist field name to its extraction state.
	MandatoryFields map[string]MandatoryField `json:"mandatory_fields"`

	// Summary carries the backend's aggregate counts. These are trusted
	// as-is for display; only the missing-field list is recomputed locally.
	Summary PayloadSummary `json:"summary"`
}

// MandatoryField is the per-checklist-field extraction state.
type MandatoryField struct {
	Required    bool   `json:"required"`
	Present     bool   `json:"present"`
	Value       string `json:"value,omitempty"`
	ExtractedAs string `json:"extracted_as,omitempty"`
}

// PayloadSummary is the backend's aggregate summary.
type PayloadSummary struct {
	TotalMandatoryFields int     `json:"total_mandatory_fields"`
	FieldsPresent        int     `json:"fields_present"`
	FieldsMissing        int     `json:"fields_missing"`
	CompletionPercentage float64 `json:"completion_percentage"`
	TotalExtractedFields int     `json:"total_extracted_fields"`
}

// MissingFieldNames returns the checklist fields the payload marks absent,
// sorted for stable output. This list is always recomputed from
// MandatoryFields rather than taken from any cached representation.
func (p *StructuredPayload) MissingFieldNames() []string {
	if p == nil {
		return nil
	}
	var missing []string
	for name, field := range p.MandatoryFields {
		if !field.Present {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Batch is a group of documents processed together.
type Batch struct {
	// ID is the unique identifier for the batch.
	ID string

	// Label is the human-readable label, e.g. "Batch 2 (3 files)".
	Label string
}

// ExtractionResult is one per-file result from the extraction backend.
type ExtractionResult struct {
	// Filename is the backend's stored file name.
	Filename string `json:"filename"`

	// Summary is the backend's one-line result summary.
	Summary string `json:"summary"`

	// MarkdownPages holds per-page markdown renditions.
	MarkdownPages []string `json:"markdown_pages"`

	// StructuredData is the structured payload, if extraction succeeded.
	StructuredData *StructuredPayload `json:"structured_data"`

	// Extractions are the raw field candidates.
	Extractions []Candidate `json:"extractions"`

	// Error is the backend's per-file failure message, empty on success.
	Error string `json:"error"`
}
