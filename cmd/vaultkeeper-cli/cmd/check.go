package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Annotate wikilinks whose target note is missing",
	Long: `Scan every note in the vault for wikilinks whose target does not
exist as a root-level note. Each broken occurrence gets a warning
callout inserted right after the line it appears on.

Examples:
  vaultkeeper-cli check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		check := commands.NewCheckCommand(GetLinker())
		result, err := check.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
