package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
	"vaultkeeper/internal/domain"
)

type batchOpJSON struct {
	OldPath     string `json:"old_path"`
	NewPath     string `json:"new_path"`
	SourceVault string `json:"source_vault,omitempty"`
	DestVault   string `json:"dest_vault,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <ops.json>",
	Short: "Apply multiple rename/delete operations in one pass",
	Long: `Apply a batch of rename and delete operations read from a JSON
file. Files are moved deepest-first so nested renames do not collide,
then every operation's link rewrite runs in the same order. An empty
new_path marks the note deleted and strikes through its links.

The file holds an array of operations:
  [
    {"old_path": "a/Old.md", "new_path": "a/New.md"},
    {"old_path": "b/Gone.md", "new_path": ""}
  ]

Examples:
  vaultkeeper-cli batch reorg.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading operations file: %w", err)
		}

		var parsed []batchOpJSON
		if err := json.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("parsing operations file: %w", err)
		}

		ops := make([]domain.RenameOp, len(parsed))
		for i, p := range parsed {
			ops[i] = domain.RenameOp{
				OldPath:     p.OldPath,
				NewPath:     p.NewPath,
				SourceVault: p.SourceVault,
				DestVault:   p.DestVault,
			}
		}

		batch := commands.NewBatchCommand(GetRepo(), GetLinker(), ops)
		result, err := batch.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
