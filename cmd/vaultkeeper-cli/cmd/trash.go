package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/adapters/sqlite"
	"vaultkeeper/internal/application/commands"
)

// openTrashStore opens the trash manifest database under the vault.
// Callers must Close the returned store.
func openTrashStore() (*sqlite.TrashStore, error) {
	store := sqlite.NewTrashStore()
	if err := store.Open(vaultPath); err != nil {
		return nil, fmt.Errorf("opening trash manifest: %w", err)
	}
	return store, nil
}

var trashCmd = &cobra.Command{
	Use:   "trash <dir-path>",
	Short: "Move a directory into the vault trash",
	Long: `Move a directory into the vault's .trash folder, record the move
in the trash manifest so it can be restored, and strike through every
wikilink that pointed at the removed notes.

Examples:
  vaultkeeper-cli trash "projects/Finished Project"
  vaultkeeper-cli trash list
  vaultkeeper-cli trash list --all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openTrashStore()
		if err != nil {
			return err
		}
		defer store.Close()

		trash := commands.NewTrashCommand(GetRepo(), store, GetLinker(), args[0])
		result, err := trash.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		fmt.Printf("Entry %d, restorable with: vaultkeeper-cli restore %d\n", result.EntryID, result.EntryID)
		return nil
	},
}

var trashListAll bool

var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trashed directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openTrashStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(trashListAll)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Trash is empty.")
			return nil
		}
		for _, e := range entries {
			status := ""
			if e.Restored {
				status = "  (restored)"
			}
			fmt.Printf("%d  %s  ->  %s%s\n", e.ID, e.OriginalPath, e.TrashPath, status)
		}
		return nil
	},
}

func init() {
	trashListCmd.Flags().BoolVar(&trashListAll, "all", false, "include entries that were already restored")
	trashCmd.AddCommand(trashListCmd)
	rootCmd.AddCommand(trashCmd)
}
