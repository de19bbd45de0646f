package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func TestPagesCommand(t *testing.T) {
	session := &mockSessionService{
		document: &domain.Document{
			ID:   "doc-1",
			Name: "invoice-001.pdf",
			MarkdownPages: []string{
				"# Invoice 001\n\nSupplier: Acme Sdn Bhd",
				"## Line Items\n\nWidget x 3",
			},
		},
	}
	withServices(t, Services{Session: session})

	out, err := execute(t, "pages", "doc-1")
	require.NoError(t, err)

	assert.Contains(t, out, "--- invoice-001.pdf, page 1/2 ---")
	assert.Contains(t, out, "Supplier: Acme Sdn Bhd")
	assert.Contains(t, out, "--- invoice-001.pdf, page 2/2 ---")
	assert.Contains(t, out, "Widget x 3")
}

func TestPagesCommand_NoPages(t *testing.T) {
	session := &mockSessionService{
		document: &domain.Document{ID: "doc-2", Name: "scan.pdf"},
	}
	withServices(t, Services{Session: session})

	out, err := execute(t, "pages", "doc-2")
	require.NoError(t, err)

	assert.Contains(t, out, "scan.pdf has no extracted pages.")
}

func TestPagesCommand_UnknownDocument(t *testing.T) {
	session := &mockSessionService{}
	withServices(t, Services{Session: session})

	_, err := execute(t, "pages", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
