package domain

// Field is one editable row in a document's field ledger.
// Identity is the generated ID; labels are not guaranteed unique after
// user edits, though seeding deduplicates by label.
type Field struct {
	// ID is the unique identifier for the row.
	ID string

	// Label is the field name. May be edited, may be empty.
	Label string

	// Text is the extracted value. May be edited, may be empty.
	Text string
}

// FieldColumn names an editable column of a ledger row.
type FieldColumn string

const (
	// ColumnLabel is the field-name column.
	ColumnLabel FieldColumn = "label"
	// ColumnText is the value column.
	ColumnText FieldColumn = "text"
)

// Valid reports whether the column name is one of the editable columns.
func (c FieldColumn) Valid() bool {
	return c == ColumnLabel || c == ColumnText
}
