package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaultkeeper/internal/adapters/filesystem"
	"vaultkeeper/internal/adapters/linkcache"
	"vaultkeeper/internal/application"
	"vaultkeeper/internal/config"
	"vaultkeeper/internal/ports"
)

var (
	vaultPath string
	repo      ports.VaultRepository
	index     ports.LinkIndexProvider
	linker    *application.Linker
)

var rootCmd = &cobra.Command{
	Use:   "vaultkeeper-cli",
	Short: "CLI for keeping wikilinks consistent in Obsidian vaults",
	Long: `vaultkeeper-cli maintains the wikilink graph of an Obsidian vault.

When notes are renamed, moved, deleted, or trashed, it rewrites every
[[wikilink]] that points at them, preserving aliases and heading
anchors, and can scan the whole vault for links whose target no
longer exists.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(vaultPath)
		index = linkcache.New(repo, config.IndexTTL())
		linker = application.NewLinker(repo, index)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// GetRepo returns the initialized repository
func GetRepo() ports.VaultRepository {
	return repo
}

// GetIndex returns the initialized link index provider
func GetIndex() ports.LinkIndexProvider {
	return index
}

// GetLinker returns the initialized link coordinator
func GetLinker() *application.Linker {
	return linker
}
