package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
)

var (
	renameSourceVault string
	renameDestVault   string
)

var renameCmd = &cobra.Command{
	Use:   "rename <old-path> [new-path]",
	Short: "Rename or move a note and rewrite its links",
	Long: `Rename or move a note within the vault, then rewrite every
wikilink that points at it. Aliases and heading anchors are preserved.

For a cross-vault move set --source-vault and --dest-vault. On the
source side give only the old path; links are rewritten to point into
the destination vault. On the destination side give only the new path
(as the single argument); an arrival note is appended instead.

Examples:
  vaultkeeper-cli rename "projects/Plan.md" "projects/Roadmap.md"
  vaultkeeper-cli rename "projects/Plan.md" --source-vault work --dest-vault archive
  vaultkeeper-cli rename "projects/Plan.md" --source-vault work --dest-vault archive --incoming`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldPath := args[0]
		newPath := ""
		if len(args) == 2 {
			newPath = args[1]
		}
		if incoming, _ := cmd.Flags().GetBool("incoming"); incoming {
			oldPath, newPath = "", oldPath
		}

		rename := commands.NewRenameCommand(GetRepo(), GetLinker(), oldPath, newPath)
		rename.SourceVault = renameSourceVault
		rename.DestVault = renameDestVault

		result, err := rename.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameSourceVault, "source-vault", "", "vault the note is moving out of")
	renameCmd.Flags().StringVar(&renameDestVault, "dest-vault", "", "vault the note is moving into")
	renameCmd.Flags().Bool("incoming", false, "treat the path as the destination of a cross-vault move")
	rootCmd.AddCommand(renameCmd)
}
