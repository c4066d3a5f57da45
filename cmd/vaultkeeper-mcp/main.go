package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultkeeper/internal/adapters/filesystem"
	"vaultkeeper/internal/adapters/linkcache"
	mcpadapter "vaultkeeper/internal/adapters/mcp"
	"vaultkeeper/internal/adapters/sqlite"
	"vaultkeeper/internal/application"
	"vaultkeeper/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	repo := filesystem.NewRepository(*vaultFlag)
	index := linkcache.New(repo, config.IndexTTL())
	linker := application.NewLinker(repo, index)

	store := sqlite.NewTrashStore()
	if err := store.Open(*vaultFlag); err != nil {
		log.Fatalf("vaultkeeper-mcp: opening trash manifest: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"vaultkeeper-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, index, store)
	mcpadapter.RegisterWriteTools(mcpServer, repo, linker, index, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultkeeper-mcp: %v", err)
	}
}
