package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	if ports.Session == nil {
		ports.Session = &mockSessionService{}
	}
	if ports.Validation == nil {
		ports.Validation = &mockValidationService{}
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns documents", func(t *testing.T) {
		mockSession := &mockSessionService{
			documents: []domain.Document{
				{
					ID:            "doc-1",
					Name:          "Invoice-1",
					FileNumber:    1,
					Summary:       "18 of 34 fields identified",
					MarkdownPages: []string{"page one", "page two"},
				},
				{
					ID:         "doc-2",
					Name:       "Invoice-2",
					FileNumber: 2,
				},
			},
		}

		server := newTestServer(t, &Ports{Session: mockSession})

		input := ListDocumentsInput{}
		_, output, err := server.handleListDocuments(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Documents, 2)
		assert.Equal(t, "doc-1", output.Documents[0].ID)
		assert.Equal(t, "Invoice-1", output.Documents[0].Name)
		assert.Equal(t, 1, output.Documents[0].FileNumber)
		assert.Equal(t, "18 of 34 fields identified", output.Documents[0].Summary)
		assert.Equal(t, 2, output.Documents[0].PageCount)
		assert.Equal(t, "Invoice-2", output.Documents[1].Name)
	})

	t.Run("empty batch returns zero documents", func(t *testing.T) {
		server := newTestServer(t, &Ports{Session: &mockSessionService{}})

		_, output, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
	})

	t.Run("returns error on session failure", func(t *testing.T) {
		mockSession := &mockSessionService{
			err: domain.ErrNoCurrentBatch,
		}

		server := newTestServer(t, &Ports{Session: mockSession})

		_, _, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoCurrentBatch)
	})
}

func TestServer_handleGetCoverage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns coverage", func(t *testing.T) {
		mockValidation := &mockValidationService{
			coverage: &domain.Coverage{
				TotalExtracted:    21,
				TotalMandatory:    34,
				FieldsIdentified:  18,
				CompletionRate:    52.9,
				MissingFieldNames: []string{"Supplier's TIN", "Invoice Date and Time"},
			},
		}

		server := newTestServer(t, &Ports{Validation: mockValidation})

		input := GetCoverageInput{DocumentID: "doc-1"}
		_, output, err := server.handleGetCoverage(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 21, output.TotalExtracted)
		assert.Equal(t, 34, output.TotalMandatory)
		assert.Equal(t, 18, output.FieldsIdentified)
		assert.Equal(t, 52.9, output.CompletionRate)
		assert.Equal(t, []string{"Supplier's TIN", "Invoice Date and Time"}, output.MissingFields)
	})

	t.Run("returns error on unknown document", func(t *testing.T) {
		mockValidation := &mockValidationService{
			err: domain.ErrNotFound,
		}

		server := newTestServer(t, &Ports{Validation: mockValidation})

		input := GetCoverageInput{DocumentID: "missing"}
		_, _, err := server.handleGetCoverage(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleSaveValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("returns snapshot summary", func(t *testing.T) {
		mockValidation := &mockValidationService{
			record: &domain.ValidationRecord{
				Snapshot: domain.Snapshot{
					ID:               "1700000000000-abcd1234",
					Timestamp:        "2026-08-30 12:00:00",
					FileName:         "Invoice-3",
					FieldsIdentified: 29,
					CompletionRate:   85,
				},
				Report: []byte("%PDF-1.3 fake"),
			},
		}

		server := newTestServer(t, &Ports{Validation: mockValidation})

		input := SaveValidationInput{DocumentID: "doc-3"}
		_, output, err := server.handleSaveValidation(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "1700000000000-abcd1234", output.SnapshotID)
		assert.Equal(t, "2026-08-30 12:00:00", output.Timestamp)
		assert.Equal(t, "Invoice-3", output.FileName)
		assert.Equal(t, 29, output.FieldsIdentified)
		assert.Equal(t, 85.0, output.CompletionRate)
		assert.Equal(t, len("%PDF-1.3 fake"), output.ReportBytes)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mockValidation := &mockValidationService{
			err: errors.New("render failed"),
		}

		server := newTestServer(t, &Ports{Validation: mockValidation})

		input := SaveValidationInput{DocumentID: "doc-3"}
		_, _, err := server.handleSaveValidation(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "render failed")
	})
}
