package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func TestCoverage_ShowsStatsAndMissing(t *testing.T) {
	validation := &mockValidationService{
		coverage: &domain.Coverage{
			TotalExtracted:    21,
			TotalMandatory:    34,
			FieldsIdentified:  18,
			CompletionRate:    52.9,
			MissingFieldNames: []string{"Supplier's TIN", "Invoice Date and Time"},
		},
	}
	withServices(t, Services{Validation: validation})

	out, err := execute(t, "coverage", "doc-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Extracted fields:     21")
	assert.Contains(t, out, "Mandatory identified: 18/34")
	assert.Contains(t, out, "Completion rate:      52.9%")
	assert.Contains(t, out, "GOOD")
	assert.Contains(t, out, "Missing mandatory fields (2):")
	assert.Contains(t, out, "- Supplier's TIN")
	assert.Contains(t, out, "- Invoice Date and Time")
}

func TestCoverage_AllPresent(t *testing.T) {
	validation := &mockValidationService{
		coverage: &domain.Coverage{
			TotalExtracted:   40,
			TotalMandatory:   34,
			FieldsIdentified: 34,
			CompletionRate:   100,
		},
	}
	withServices(t, Services{Validation: validation})

	out, err := execute(t, "coverage", "doc-1")

	require.NoError(t, err)
	assert.Contains(t, out, "All mandatory fields are present!")
	assert.Contains(t, out, "EXCELLENT")
}

func TestCoverage_UnknownDocument(t *testing.T) {
	validation := &mockValidationService{err: domain.ErrNotFound}
	withServices(t, Services{Validation: validation})

	_, err := execute(t, "coverage", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
