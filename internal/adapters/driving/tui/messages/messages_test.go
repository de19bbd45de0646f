package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewDocuments, "documents"},
		{ViewFields, "fields"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestDocumentsLoaded_CarriesError(t *testing.T) {
	err := errors.New("backend gone")
	msg := DocumentsLoaded{Err: err}
	assert.ErrorIs(t, msg.Err, err)
	assert.Empty(t, msg.Documents)
}

func TestDocumentSelected_CarriesDocument(t *testing.T) {
	msg := DocumentSelected{Document: domain.Document{ID: "doc-1", Name: "Invoice-1"}}
	assert.Equal(t, "doc-1", msg.Document.ID)
	assert.Equal(t, "Invoice-1", msg.Document.Name)
}

func TestCoverageUpdated_CarriesCoverage(t *testing.T) {
	msg := CoverageUpdated{
		DocumentID: "doc-1",
		Coverage:   &domain.Coverage{CompletionRate: 85},
	}
	assert.Equal(t, 85.0, msg.Coverage.CompletionRate)
}

func TestSnapshotSaved_CarriesRecord(t *testing.T) {
	msg := SnapshotSaved{
		Record: &domain.ValidationRecord{
			Snapshot: domain.Snapshot{ID: "snap-1"},
		},
	}
	assert.Equal(t, "snap-1", msg.Record.Snapshot.ID)
}
