package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func TestProcess_RegistersBatch(t *testing.T) {
	session := &mockSessionService{
		batch: &domain.Batch{ID: "batch-1", Label: "Batch 1 (2 files)"},
		documents: []domain.Document{
			{ID: "doc-1", Name: "Invoice-1", Summary: "18 of 34 fields identified"},
			{ID: "doc-2", Name: "Invoice-2"},
		},
	}
	withServices(t, Services{Session: session})

	out, err := execute(t, "process", "a.pdf", "b.pdf")

	require.NoError(t, err)
	assert.Contains(t, out, "Registered Batch 1 (2 files)")
	assert.Contains(t, out, "doc-1  Invoice-1")
	assert.Contains(t, out, "18 of 34 fields identified")
	assert.Contains(t, out, "Batch batch-1 is now current.")
}

func TestProcess_RequiresFiles(t *testing.T) {
	withServices(t, Services{Session: &mockSessionService{}})

	_, err := execute(t, "process")

	assert.Error(t, err)
}

func TestProcess_ExtractorUnavailable(t *testing.T) {
	session := &mockSessionService{err: domain.ErrExtractorUnavailable}
	withServices(t, Services{Session: session})

	_, err := execute(t, "process", "a.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractorUnavailable)
}
