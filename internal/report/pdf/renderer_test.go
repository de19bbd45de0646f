package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func TestRenderer_Render_ProducesPDF(t *testing.T) {
	renderer := NewRenderer()

	data, err := renderer.Render(context.Background(), &domain.Snapshot{
		Timestamp:        "2025-06-01 12:00:00",
		FileName:         "Invoice-1",
		TotalExtracted:   1,
		FieldsIdentified: 18,
		CompletionRate:   52.9,
		ExtractedFields: []domain.SnapshotField{
			{Name: "Supplier's Name", Value: "Acme Sdn Bhd", IsMandatory: true},
		},
		MissingFields: []string{"Supplier's TIN"},
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output starts with a PDF header")
	assert.Greater(t, len(data), 1000)
}

func TestRenderer_Render_EmptySnapshot(t *testing.T) {
	renderer := NewRenderer()

	data, err := renderer.Render(context.Background(), &domain.Snapshot{FileName: "Invoice-1"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_Render_ManyRowsPaginates(t *testing.T) {
	renderer := NewRenderer()

	snap := &domain.Snapshot{FileName: "Invoice-1", Timestamp: "2025-06-01 12:00:00"}
	for i := 0; i < 120; i++ {
		snap.ExtractedFields = append(snap.ExtractedFields, domain.SnapshotField{
			Name:  "line_item_description",
			Value: "a reasonably long extracted value that wraps across lines",
		})
	}

	data, err := renderer.Render(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	// Multiple pages come out noticeably larger than a single-page report.
	assert.Greater(t, len(data), 5000)
}
