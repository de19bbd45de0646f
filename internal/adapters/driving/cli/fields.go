package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Inspect and edit a document's field ledger",
	Long: `Each document carries an editable ledger of extracted fields. Rows can
be listed, edited, added, and deleted; coverage statistics update with every
change.`,
}

var fieldsListCmd = &cobra.Command{
	Use:   "list [doc-id]",
	Short: "List the document's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsList,
}

var fieldsEditCmd = &cobra.Command{
	Use:   "edit [doc-id] [field-id] [label|text] [value]",
	Short: "Edit one column of a field",
	Args:  cobra.ExactArgs(4),
	RunE:  runFieldsEdit,
}

var fieldsAddCmd = &cobra.Command{
	Use:   "add [doc-id]",
	Short: "Append an empty field row",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsAdd,
}

var fieldsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id] [field-id]",
	Short: "Delete a field row",
	Args:  cobra.ExactArgs(2),
	RunE:  runFieldsDelete,
}

func init() {
	fieldsCmd.AddCommand(fieldsListCmd)
	fieldsCmd.AddCommand(fieldsEditCmd)
	fieldsCmd.AddCommand(fieldsAddCmd)
	fieldsCmd.AddCommand(fieldsDeleteCmd)
	rootCmd.AddCommand(fieldsCmd)
}

func runFieldsList(cmd *cobra.Command, args []string) error {
	if ledgerService == nil || sessionService == nil {
		return errors.New("ledger service not configured")
	}

	ctx := context.Background()
	doc, err := sessionService.GetDocument(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	fields, err := ledgerService.List(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to list fields: %w", err)
	}

	if len(fields) == 0 {
		cmd.Printf("%s has no fields. Use 'veridoc fields add' to create one.\n", doc.Name)
		return nil
	}

	cmd.Printf("Fields for %s:\n\n", doc.Name)
	for i := range fields {
		tag := domain.Classify(fields[i].Label, doc.Payload)
		cmd.Printf("  [%d] %s\n", i+1, fields[i].ID)
		cmd.Printf("      Label: %s\n", fields[i].Label)
		cmd.Printf("      Value: %s\n", fields[i].Text)
		cmd.Printf("      Class: %s\n", tag)
		cmd.Println()
	}
	cmd.Printf("Total: %d fields\n", len(fields))
	return nil
}

func runFieldsEdit(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errors.New("ledger service not configured")
	}

	column := domain.FieldColumn(args[2])
	if !column.Valid() {
		return fmt.Errorf("column must be 'label' or 'text', got %q", args[2])
	}

	if err := ledgerService.Edit(context.Background(), args[0], args[1], column, args[3]); err != nil {
		return fmt.Errorf("failed to edit field: %w", err)
	}
	cmd.Println("Field updated.")
	return nil
}

func runFieldsAdd(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errors.New("ledger service not configured")
	}

	id, err := ledgerService.AddRow(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to add field: %w", err)
	}
	cmd.Printf("Added field %s\n", id)
	return nil
}

func runFieldsDelete(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errors.New("ledger service not configured")
	}

	if err := ledgerService.DeleteRow(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to delete field: %w", err)
	}
	cmd.Println("Field deleted.")
	return nil
}
