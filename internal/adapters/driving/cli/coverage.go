package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage [doc-id]",
	Short: "Show a document's mandatory-field coverage",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverage,
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	cov, err := validationService.Coverage(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to compute coverage: %w", err)
	}

	cmd.Printf("Extracted fields:     %d\n", cov.TotalExtracted)
	cmd.Printf("Mandatory identified: %d/%d\n", cov.FieldsIdentified, cov.TotalMandatory)
	cmd.Printf("Completion rate:      %.1f%%\n", cov.CompletionRate)
	cmd.Printf("Status:               %s\n", domain.TierFor(cov.CompletionRate).StatusText())

	if len(cov.MissingFieldNames) > 0 {
		cmd.Printf("\nMissing mandatory fields (%d):\n", len(cov.MissingFieldNames))
		for _, name := range cov.MissingFieldNames {
			cmd.Printf("  - %s\n", name)
		}
	} else {
		cmd.Println("\nAll mandatory fields are present!")
	}
	return nil
}
