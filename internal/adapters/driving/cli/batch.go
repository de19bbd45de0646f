package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage processed batches",
	Long:  `List batches and switch the current selection.`,
}

var batchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all batches in this session",
	RunE:  runBatchList,
}

var batchSelectCmd = &cobra.Command{
	Use:   "select [batch-id]",
	Short: "Make a batch the current selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchSelect,
}

func init() {
	batchCmd.AddCommand(batchListCmd)
	batchCmd.AddCommand(batchSelectCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatchList(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	batches, err := sessionService.ListBatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to list batches: %w", err)
	}
	if len(batches) == 0 {
		cmd.Println("No batches yet. Run 'veridoc process' first.")
		return nil
	}

	currentID := ""
	if current, err := sessionService.CurrentBatch(ctx); err == nil {
		currentID = current.ID
	}

	for i := range batches {
		marker := " "
		if batches[i].ID == currentID {
			marker = "*"
		}
		cmd.Printf("%s %s  %s\n", marker, batches[i].ID, batches[i].Label)
	}
	return nil
}

func runBatchSelect(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	if err := sessionService.SelectBatch(ctx, args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no such batch: %s", args[0])
		}
		return fmt.Errorf("failed to select batch: %w", err)
	}

	cmd.Printf("Batch %s is now current.\n", args[0])
	return nil
}
