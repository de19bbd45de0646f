package parseapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

func writeTempPDF(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644)
	require.NoError(t, err)
	return path
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:8000"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
}

func TestClient_Extract_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotFiles []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		for _, fh := range r.MultipartForm.File["files"] {
			gotFiles = append(gotFiles, fh.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"filename": "invoice_a.pdf",
					"summary": "12 fields extracted",
					"markdown_pages": ["# Page 1"],
					"structured_data": {
						"mandatory_fields": {
							"Supplier's Name": {"required": true, "present": true, "value": "Acme Sdn Bhd"}
						},
						"summary": {"fields_present": 1, "completion_percentage": 2.9}
					},
					"extractions": [
						{"extraction_class": "invoice_number", "extraction_text": "INV-001"}
					]
				},
				{"filename": "broken.pdf", "error": "could not parse document"}
			]
		}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "test-key", RequestsPerSecond: 100, BurstSize: 10})
	require.NoError(t, err)

	results, err := client.Extract(context.Background(), []string{
		writeTempPDF(t, "invoice_a.pdf"),
		writeTempPDF(t, "broken.pdf"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/upload-pdf", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"invoice_a.pdf", "broken.pdf"}, gotFiles)

	require.Len(t, results, 2)
	assert.Equal(t, "invoice_a.pdf", results[0].Filename)
	assert.Equal(t, "12 fields extracted", results[0].Summary)
	require.NotNil(t, results[0].StructuredData)
	assert.True(t, results[0].StructuredData.MandatoryFields["Supplier's Name"].Present)
	assert.Equal(t, "INV-001", results[0].Extractions[0].Text())

	assert.Equal(t, "could not parse document", results[1].Error)
	assert.Nil(t, results[1].StructuredData)
}

func TestClient_Extract_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "extraction engine offline", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, RequestsPerSecond: 100, BurstSize: 10})
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), []string{writeTempPDF(t, "a.pdf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Extract_RateLimitedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, RequestsPerSecond: 100, BurstSize: 10})
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), []string{writeTempPDF(t, "a.pdf")})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestClient_Extract_MissingFile(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:8000", RequestsPerSecond: 100, BurstSize: 10})
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), []string{"/nonexistent/file.pdf"})
	assert.Error(t, err)
}
