package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
)

var (
	backlinksRefresh bool
	backlinksCopy    bool
)

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <target>",
	Short: "List the notes that link to a target",
	Long: `List every note containing a wikilink to the target, with the
line number and surrounding text of each occurrence. The target can be
a bare note name or a vault-relative path.

Examples:
  vaultkeeper-cli backlinks "Project Plan"
  vaultkeeper-cli backlinks "projects/Project Plan.md" --refresh
  vaultkeeper-cli backlinks "Project Plan" --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := commands.NewBacklinksCommand(GetIndex(), args[0])
		query.Force = backlinksRefresh

		result, err := query.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(result.Entries) == 0 {
			fmt.Printf("No notes link to %s.\n", result.Target)
			return nil
		}

		fmt.Println(result.Message)
		fmt.Println()
		var paths []string
		for _, entry := range result.Entries {
			paths = append(paths, entry.SourcePath)
			fmt.Println(entry.SourcePath)
			for _, occ := range entry.Occurrences {
				fmt.Printf("  %d: %s\n", occ.Line, occ.Context)
			}
		}

		if backlinksCopy {
			if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Printf("\nCopied %d paths to clipboard.\n", len(paths))
		}
		return nil
	},
}

func init() {
	backlinksCmd.Flags().BoolVar(&backlinksRefresh, "refresh", false, "rebuild the link index before querying")
	backlinksCmd.Flags().BoolVar(&backlinksCopy, "copy", false, "copy the referencing note paths to the clipboard")
	rootCmd.AddCommand(backlinksCmd)
}
