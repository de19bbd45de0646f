package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/logger"
)

var processCmd = &cobra.Command{
	Use:   "process [pdf-files...]",
	Short: "Upload PDFs for extraction and register them as a batch",
	Long: `Sends the given PDF files to the extraction backend, registers the
results as a new batch with seeded field ledgers, and makes that batch the
current selection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	logger.Info("uploading %d file(s) for extraction", len(args))

	batch, docs, err := sessionService.Process(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to process files: %w", err)
	}

	cmd.Printf("Registered %s\n\n", batch.Label)
	for i := range docs {
		cmd.Printf("  %s  %s\n", docs[i].ID, docs[i].Name)
		if docs[i].Summary != "" {
			cmd.Printf("    %s\n", docs[i].Summary)
		}
	}
	cmd.Printf("\nBatch %s is now current.\n", batch.ID)
	return nil
}
