package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vaultkeeper/internal/adapters/filesystem"
	"vaultkeeper/internal/adapters/linkcache"
	"vaultkeeper/internal/adapters/tui"
	"vaultkeeper/internal/application"
	"vaultkeeper/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	// Initialize adapters
	repo := filesystem.NewRepository(*vaultFlag)
	index := linkcache.New(repo, config.IndexTTL())
	linker := application.NewLinker(repo, index)

	// Create and run TUI app
	app := tui.NewApp(repo, index, linker)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
