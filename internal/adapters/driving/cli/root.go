// Package cli implements the veridoc command-line interface using cobra.
// Commands are thin adapters: they parse arguments, call the driving port
// services, and format output.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
	"github.com/veridoc-labs/veridoc-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by the composition root (cmd/veridoc).
var (
	sessionService    driving.SessionService
	ledgerService     driving.LedgerService
	validationService driving.ValidationService
	reportService     driving.ReportService
	configStore       driven.ConfigStore
)

// verboseFlag enables debug logging to stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "veridoc",
	Short: "Validate e-invoices against the mandatory-field checklist",
	Long: `veridoc processes invoice PDFs through an extraction backend, reconciles
the extracted fields against the mandatory e-invoice checklist, lets you
correct the result interactively, and renders a paginated PDF report.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

// Services bundles everything the commands need.
type Services struct {
	Session    driving.SessionService
	Ledger     driving.LedgerService
	Validation driving.ValidationService
	Report     driving.ReportService
	Config     driven.ConfigStore
}

// SetServices wires the core services into the command tree.
func SetServices(s Services) {
	sessionService = s.Session
	ledgerService = s.Ledger
	validationService = s.Validation
	reportService = s.Report
	configStore = s.Config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// long-running commands stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}
