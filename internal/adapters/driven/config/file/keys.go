package file

// Well-known configuration keys. Stored in dot notation; the TOML file uses
// the matching nested tables.
const (
	// KeyBackendURL is the parse backend base URL.
	KeyBackendURL = "backend.url"

	// KeyBackendAPIKey is the parse backend API key.
	KeyBackendAPIKey = "backend.api_key"

	// KeyBackendRate is the sustained upload rate in requests per second.
	KeyBackendRate = "backend.requests_per_second"

	// KeyEmailWebhookURL is the email delivery webhook endpoint.
	KeyEmailWebhookURL = "email.webhook_url"

	// KeyWatchDirectory is the directory watched for dropped PDFs.
	KeyWatchDirectory = "watch.directory"
)
