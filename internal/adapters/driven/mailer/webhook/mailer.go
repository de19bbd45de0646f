// Package webhook delivers validation reports by POSTing them to an email
// webhook. Delivery is best-effort: a failure is reported to the caller and
// nothing is retried automatically.
package webhook

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
)

// Ensure Mailer implements the interface.
var _ driven.ReportMailer = (*Mailer)(nil)

// DefaultTimeout bounds one delivery attempt.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the email webhook.
type Config struct {
	// URL is the webhook endpoint (required).
	URL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Mailer sends reports through an email webhook.
type Mailer struct {
	client *http.Client
	url    string
}

// sendRequest is the webhook's expected payload format.
type sendRequest struct {
	To         string     `json:"to"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Attachment attachment `json:"attachment"`
	Validation validation `json:"validationData"`
}

type attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

type validation struct {
	FileName         string  `json:"fileName"`
	Timestamp        string  `json:"timestamp"`
	TotalExtracted   int     `json:"totalExtracted"`
	FieldsIdentified int     `json:"fieldsIdentified"`
	CompletionRate   float64 `json:"completionRate"`
}

// New creates a new webhook mailer.
func New(cfg Config) (*Mailer, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook: URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Mailer{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
	}, nil
}

// Send POSTs the report as a base64 PDF attachment. Non-2xx responses are
// returned as errors; stored session state is never touched from here.
func (m *Mailer) Send(ctx context.Context, msg domain.OutboundReport) error {
	payload := sendRequest{
		To:      msg.To,
		Subject: msg.Subject,
		Message: msg.Message,
		Attachment: attachment{
			Filename:    fmt.Sprintf("%s_validation_report.pdf", msg.Snapshot.FileName),
			Content:     base64.StdEncoding.EncodeToString(msg.Report),
			ContentType: "application/pdf",
		},
		Validation: validation{
			FileName:         msg.Snapshot.FileName,
			Timestamp:        msg.Snapshot.Timestamp,
			TotalExtracted:   msg.Snapshot.TotalExtracted,
			FieldsIdentified: msg.Snapshot.FieldsIdentified,
			CompletionRate:   msg.Snapshot.CompletionRate,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook: returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
