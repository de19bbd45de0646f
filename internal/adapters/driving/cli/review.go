package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui"
)

// reviewCmd represents the review command.
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Launch the interactive field review interface",
	Long: `Launch the interactive terminal interface for reviewing extracted fields.

Pick a document from the current batch, edit its field ledger, watch the
completion rate update as you work, and save a validation snapshot when done.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Edit value
  l        - Edit label
  a        - Add row
  d        - Delete row
  s        - Save validation
  Esc      - Back / Cancel
  ?        - Help
  q        - Quit`,
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in review UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Session:    sessionService,
		Ledger:     ledgerService,
		Validation: validationService,
		Report:     reportService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create review UI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review UI error: %w", err)
	}

	return nil
}
