package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <entry-id>",
	Short: "Restore a trashed directory",
	Long: `Move a trashed directory back to its original location and mark
the manifest entry restored. Use "trash list" to find the entry ID.

Examples:
  vaultkeeper-cli restore 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID %q", args[0])
		}

		store, err := openTrashStore()
		if err != nil {
			return err
		}
		defer store.Close()

		restore := commands.NewRestoreCommand(GetRepo(), store, GetIndex(), id)
		result, err := restore.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
