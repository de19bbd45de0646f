package domain

// SnapshotField is one materialised ledger row inside a snapshot.
type SnapshotField struct {
	// Name is the row's label at save time.
	Name string

	// Value is the row's text at save time.
	Value string

	// IsMandatory is true iff the label was a key in the payload's
	// mandatory_fields mapping with present == true.
	IsMandatory bool
}

// Snapshot is an immutable validation record frozen at save time.
// Once built it never changes, even if the source document's ledger is
// edited afterwards: it is a point-in-time copy, not a view.
type Snapshot struct {
	// ID is unique even under rapid repeated saves (time-based with a
	// random tiebreaker).
	ID string

	// Timestamp is the human-readable save time. Data only; layout
	// never depends on the clock.
	Timestamp string

	// FileName is the source document's display name.
	FileName string

	// TotalExtracted is the ledger length at save time.
	TotalExtracted int

	// FieldsIdentified is copied from the document's backend summary.
	FieldsIdentified int

	// CompletionRate is copied from the document's backend summary.
	CompletionRate float64

	// ExtractedFields materialises every ledger row.
	ExtractedFields []SnapshotField

	// MissingFields lists the checklist fields marked absent, recomputed
	// from mandatory_fields at build time.
	MissingFields []string
}

// ValidationRecord is a stored history entry: a snapshot together with its
// rendered report artifact.
type ValidationRecord struct {
	Snapshot Snapshot

	// Report is the rendered PDF artifact for the snapshot.
	Report []byte
}

// OutboundReport is an email delivery request for a stored validation.
type OutboundReport struct {
	To      string
	Subject string
	Message string

	Snapshot Snapshot
	Report   []byte
}
