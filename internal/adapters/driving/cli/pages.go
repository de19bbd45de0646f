package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [doc-id]",
	Short: "Print a document's extracted markdown pages",
	Args:  cobra.ExactArgs(1),
	RunE:  runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	doc, err := sessionService.GetDocument(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if len(doc.MarkdownPages) == 0 {
		cmd.Printf("%s has no extracted pages.\n", doc.Name)
		return nil
	}

	for i, page := range doc.MarkdownPages {
		cmd.Printf("--- %s, page %d/%d ---\n", doc.Name, i+1, len(doc.MarkdownPages))
		cmd.Println(page)
	}
	return nil
}
