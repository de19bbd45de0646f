// Command veridoc validates e-invoice PDFs against the mandatory-field
// checklist. This is the composition root: it builds the driven adapters,
// wires the core services, and hands everything to the CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/config/file"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/extraction/parseapi"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/mailer/webhook"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/storage/memory"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/cli"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/services"
	"github.com/veridoc-labs/veridoc-cli/internal/report/pdf"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	docStore := memory.NewDocumentStore()
	historyStore := memory.NewHistoryStore()

	extractor, err := buildExtractor(configStore)
	if err != nil {
		return fmt.Errorf("configuring extraction backend: %w", err)
	}

	mailer, err := buildMailer(configStore)
	if err != nil {
		return fmt.Errorf("configuring email webhook: %w", err)
	}

	renderer := pdf.NewRenderer()

	sessionService := services.NewSessionService(docStore, historyStore, extractor)
	ledgerService := services.NewLedgerService(docStore)
	validationService := services.NewValidationService(docStore, historyStore, renderer)
	reportService := services.NewReportService(historyStore, mailer)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Session:    sessionService,
		Ledger:     ledgerService,
		Validation: validationService,
		Report:     reportService,
		Config:     configStore,
	})

	return cli.ExecuteContext(ctx)
}

// buildExtractor creates the extraction backend client, or nil when no
// backend URL is configured. Commands that need it report the gap.
func buildExtractor(configStore driven.ConfigStore) (driven.Extractor, error) {
	baseURL := configStore.GetString(file.KeyBackendURL)
	if baseURL == "" {
		return nil, nil
	}

	cfg := parseapi.Config{
		BaseURL: baseURL,
		APIKey:  configStore.GetString(file.KeyBackendAPIKey),
	}
	if rate := configStore.GetInt(file.KeyBackendRate); rate > 0 {
		cfg.RequestsPerSecond = float64(rate)
	}

	return parseapi.New(cfg)
}

// buildMailer creates the email webhook mailer, or nil when no webhook
// URL is configured.
func buildMailer(configStore driven.ConfigStore) (driven.ReportMailer, error) {
	url := configStore.GetString(file.KeyEmailWebhookURL)
	if url == "" {
		return nil, nil
	}

	return webhook.New(webhook.Config{URL: url})
}
