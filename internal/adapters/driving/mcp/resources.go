package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for veridoc resources.
	uriScheme = "veridoc://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the mandatory-field checklist.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "checklist",
		Name:        "checklist",
		Description: "The fixed ordered list of mandatory e-invoice fields",
		MIMEType:    "application/json",
	}, s.handleChecklistResource)

	// Static resource for the validation history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recorded validation snapshots, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a document's field ledger.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}/fields",
		Name:        "document-fields",
		Description: "The editable field ledger of a specific document",
		MIMEType:    "application/json",
	}, s.handleFieldsResource)
}

// handleChecklistResource returns the mandatory-field checklist.
func (s *Server) handleChecklistResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(domain.Checklist, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling checklist: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns a summary of all recorded validations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Validation.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	// Build simplified snapshot list.
	type snapshotInfo struct {
		ID               string  `json:"id"`
		Timestamp        string  `json:"timestamp"`
		FileName         string  `json:"fileName"`
		FieldsIdentified int     `json:"fieldsIdentified"`
		CompletionRate   float64 `json:"completionRate"`
	}

	infos := make([]snapshotInfo, len(records))
	for i := range records {
		snap := records[i].Snapshot
		infos[i] = snapshotInfo{
			ID:               snap.ID,
			Timestamp:        snap.Timestamp,
			FileName:         snap.FileName,
			FieldsIdentified: snap.FieldsIdentified,
			CompletionRate:   snap.CompletionRate,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFieldsResource returns the field ledger of a specific document.
func (s *Server) handleFieldsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Ledger == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: veridoc://documents/{documentId}/fields
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	fields, err := s.ports.Ledger.List(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	// Build simplified field list.
	type fieldInfo struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Text  string `json:"text"`
	}

	infos := make([]fieldInfo, len(fields))
	for i := range fields {
		infos[i] = fieldInfo{
			ID:    fields[i].ID,
			Label: fields[i].Label,
			Text:  fields[i].Text,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling fields: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like veridoc://documents/{documentId}/fields.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"
	const suffix = "/fields"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
