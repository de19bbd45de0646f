package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage veridoc configuration",
	Long: `View and change configuration stored in ~/.veridoc/config.toml.

Keys:
  backend.url                  extraction backend base URL
  backend.requests_per_second  sustained upload rate
  email.webhook_url            email delivery webhook
  watch.directory              directory watched by 'veridoc watch'`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Set the extraction backend API key",
	Long:  `Prompts for the API key without echoing it to the terminal.`,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	for _, key := range []string{file.KeyBackendURL, file.KeyBackendRate, file.KeyEmailWebhookURL, file.KeyWatchDirectory} {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %s = (not set)\n", key)
			continue
		}
		cmd.Printf("  %s = %v\n", key, value)
	}

	if configStore.GetString(file.KeyBackendAPIKey) != "" {
		cmd.Printf("  %s = (set)\n", file.KeyBackendAPIKey)
	} else {
		cmd.Printf("  %s = (not set)\n", file.KeyBackendAPIKey)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("no API key entered")
	}

	if err := configStore.Set(file.KeyBackendAPIKey, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Println("API key stored.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo first
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
