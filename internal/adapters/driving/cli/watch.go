package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driven/config/file"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a drop directory for new PDF files",
	Long: `Watch a directory and process every new PDF file automatically.

Each dropped file is sent to the extraction backend and registered as a
single-file batch. The directory can be given as an argument or set once
with 'veridoc config set watch.directory <path>'.

Examples:
  veridoc watch ~/invoices/inbox
  veridoc watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return fmt.Errorf("session service not initialised")
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString(file.KeyWatchDirectory)
	}
	if dir == "" {
		return fmt.Errorf("no directory given and %s is not set", file.KeyWatchDirectory)
	}

	watcher, err := watch.NewWatcher(watch.Config{Directory: dir}, sessionService)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s. Press Ctrl+C to stop.\n", dir)
	return watcher.Run(cmd.Context())
}
