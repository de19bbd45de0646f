package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportSaveDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "View or save a rendered validation report",
}

var reportViewCmd = &cobra.Command{
	Use:   "view [snapshot-id]",
	Short: "Open the report in the default PDF viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportView,
}

var reportSaveCmd = &cobra.Command{
	Use:   "save [snapshot-id]",
	Short: "Save the report as a PDF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportSave,
}

func init() {
	reportSaveCmd.Flags().StringVarP(&reportSaveDir, "dir", "d", ".", "directory to save the report into")

	reportCmd.AddCommand(reportViewCmd)
	reportCmd.AddCommand(reportSaveCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportView(_ *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	if err := reportService.View(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	return nil
}

func runReportSave(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	path, err := reportService.SaveTo(context.Background(), args[0], reportSaveDir)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	cmd.Printf("Saved %s\n", path)
	return nil
}
