package domain

// FieldClass is the three-way classification of a ledger row against the
// mandatory-field checklist. Exactly one class holds for any row.
type FieldClass int

const (
	// ClassMandatoryPresent: the row's label is a checklist field the
	// backend marked present.
	ClassMandatoryPresent FieldClass = iota

	// ClassMandatoryMissing: the row's label matches a checklist field
	// the backend marked absent.
	ClassMandatoryMissing

	// ClassAdditional: the row's label matches no checklist field.
	ClassAdditional
)

// String returns the classification tag used in reports.
func (c FieldClass) String() string {
	switch c {
	case ClassMandatoryPresent:
		return "MANDATORY"
	case ClassMandatoryMissing:
		return "MANDATORY (MISSING)"
	default:
		return "ADDITIONAL"
	}
}

// Classify determines a label's class against a payload's mandatory fields.
// A nil payload classifies everything as additional.
func Classify(label string, payload *StructuredPayload) FieldClass {
	if payload == nil {
		return ClassAdditional
	}
	field, ok := payload.MandatoryFields[label]
	switch {
	case ok && field.Present:
		return ClassMandatoryPresent
	case ok:
		return ClassMandatoryMissing
	default:
		return ClassAdditional
	}
}

// Coverage holds the derived compliance statistics for one document.
// It is a pure function of (payload, ledger length); never cached.
type Coverage struct {
	// TotalExtracted is the live ledger length.
	TotalExtracted int

	// TotalMandatory is the checklist size.
	TotalMandatory int

	// FieldsIdentified is the backend-reported mandatory-field count.
	// The backend is authoritative for this number.
	FieldsIdentified int

	// CompletionRate is the backend-reported completion percentage.
	CompletionRate float64

	// MissingFieldNames is recomputed locally from the payload's
	// mandatory_fields mapping, never taken from a cached list.
	MissingFieldNames []string
}

// Tier is the completion-rate band used for report colouring and the
// compliance banner.
type Tier int

const (
	// TierExcellent is a completion rate of 70 or above.
	TierExcellent Tier = iota
	// TierGood is a completion rate of 40 up to 70.
	TierGood
	// TierNeedsImprovement is everything below 40.
	TierNeedsImprovement
)

// TierFor returns the tier for a completion rate.
func TierFor(completionRate float64) Tier {
	switch {
	case completionRate >= 70:
		return TierExcellent
	case completionRate >= 40:
		return TierGood
	default:
		return TierNeedsImprovement
	}
}

// StatusText returns the compliance banner text for the tier.
func (t Tier) StatusText() string {
	switch t {
	case TierExcellent:
		return "EXCELLENT - High compliance achieved"
	case TierGood:
		return "GOOD - Moderate compliance, some improvements needed"
	default:
		return "NEEDS IMPROVEMENT - Low compliance, significant gaps identified"
	}
}
