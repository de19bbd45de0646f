package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the validation history",
	Long:  `List saved validations or clear the whole session.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved validations, newest first",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the session",
	Long: `Removes the validation history, all documents, ledgers, and batches,
and restarts invoice numbering from 1.`,
	RunE: runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	records, err := validationService.History(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No validations saved yet.")
		return nil
	}

	for i := range records {
		snap := records[i].Snapshot
		cmd.Printf("  %s\n", snap.ID)
		cmd.Printf("    File: %s  Saved: %s\n", snap.FileName, snap.Timestamp)
		cmd.Printf("    Identified: %d (%.1f%%)  Extracted: %d\n",
			snap.FieldsIdentified, snap.CompletionRate, snap.TotalExtracted)
		cmd.Println()
	}
	cmd.Printf("Total: %d validations\n", len(records))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.ClearHistory(context.Background()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("Session cleared. Invoice numbering restarts at 1.")
	return nil
}
