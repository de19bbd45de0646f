package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	emailSubject string
	emailMessage string
)

var emailCmd = &cobra.Command{
	Use:   "email [snapshot-id] [recipient]",
	Short: "Email a validation report",
	Long: `Sends the rendered report as a PDF attachment through the configured
email webhook. Delivery is best-effort: a failure leaves the saved
validation untouched and the command can simply be re-run.`,
	Args: cobra.ExactArgs(2),
	RunE: runEmail,
}

func init() {
	emailCmd.Flags().StringVarP(&emailSubject, "subject", "s", "", "email subject (default derives from the file name)")
	emailCmd.Flags().StringVarP(&emailMessage, "message", "m", "", "email body (default summarises the validation)")
	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	to := args[1]
	if !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient address: %s", to)
	}

	if err := reportService.Email(context.Background(), args[0], to, emailSubject, emailMessage); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	cmd.Printf("Report sent to %s\n", to)
	return nil
}
