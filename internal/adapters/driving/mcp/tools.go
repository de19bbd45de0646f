package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct {
	BatchID string `json:"batch_id,omitempty" jsonschema:"batch to list; defaults to the current batch"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single processed invoice.
type DocumentOutput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FileNumber int    `json:"file_number"`
	Summary    string `json:"summary,omitempty"`
	PageCount  int    `json:"page_count"`
}

// GetCoverageInput is the input schema for the get_coverage tool.
type GetCoverageInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document to compute coverage for"`
}

// GetCoverageOutput is the output schema for the get_coverage tool.
type GetCoverageOutput struct {
	TotalExtracted   int      `json:"total_extracted"`
	TotalMandatory   int      `json:"total_mandatory"`
	FieldsIdentified int      `json:"fields_identified"`
	CompletionRate   float64  `json:"completion_rate"`
	MissingFields    []string `json:"missing_fields,omitempty"`
}

// SaveValidationInput is the input schema for the save_validation tool.
type SaveValidationInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document to snapshot and render"`
}

// SaveValidationOutput is the output schema for the save_validation tool.
type SaveValidationOutput struct {
	SnapshotID       string  `json:"snapshot_id"`
	Timestamp        string  `json:"timestamp"`
	FileName         string  `json:"file_name"`
	FieldsIdentified int     `json:"fields_identified"`
	CompletionRate   float64 `json:"completion_rate"`
	ReportBytes      int     `json:"report_bytes"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the processed invoices in a batch",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_coverage",
		Description: "Compute a document's mandatory-field coverage",
	}, s.handleGetCoverage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_validation",
		Description: "Freeze a document into a validation snapshot and render its PDF report",
	}, s.handleSaveValidation)
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Session.ListDocuments(ctx, input.BatchID)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentOutput{
			ID:         docs[i].ID,
			Name:       docs[i].Name,
			FileNumber: docs[i].FileNumber,
			Summary:    docs[i].Summary,
			PageCount:  len(docs[i].MarkdownPages),
		}
	}
	return nil, output, nil
}

// handleGetCoverage handles the get_coverage tool invocation.
func (s *Server) handleGetCoverage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetCoverageInput,
) (*mcp.CallToolResult, GetCoverageOutput, error) {
	cov, err := s.ports.Validation.Coverage(ctx, input.DocumentID)
	if err != nil {
		return nil, GetCoverageOutput{}, err
	}

	return nil, GetCoverageOutput{
		TotalExtracted:   cov.TotalExtracted,
		TotalMandatory:   cov.TotalMandatory,
		FieldsIdentified: cov.FieldsIdentified,
		CompletionRate:   cov.CompletionRate,
		MissingFields:    cov.MissingFieldNames,
	}, nil
}

// handleSaveValidation handles the save_validation tool invocation.
func (s *Server) handleSaveValidation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveValidationInput,
) (*mcp.CallToolResult, SaveValidationOutput, error) {
	record, err := s.ports.Validation.Save(ctx, input.DocumentID)
	if err != nil {
		return nil, SaveValidationOutput{}, err
	}

	snap := record.Snapshot
	return nil, SaveValidationOutput{
		SnapshotID:       snap.ID,
		Timestamp:        snap.Timestamp,
		FileName:         snap.FileName,
		FieldsIdentified: snap.FieldsIdentified,
		CompletionRate:   snap.CompletionRate,
		ReportBytes:      len(record.Report),
	}, nil
}
