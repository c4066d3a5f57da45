package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a note and strike through its links",
	Long: `Delete a note from the vault. Every wikilink that pointed at it
is struck through in place, so readers can still see what used to be
referenced.

Examples:
  vaultkeeper-cli delete "projects/Old Plan.md"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		del := commands.NewDeleteCommand(GetRepo(), GetLinker(), args[0])
		result, err := del.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
