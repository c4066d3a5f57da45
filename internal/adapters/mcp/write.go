package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/application/commands"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// RegisterWriteTools adds all write vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.VaultRepository, linker *application.Linker, index ports.LinkIndexProvider, store ports.TrashStore) {
	s.AddTool(renameTool(), renameHandler(repo, linker))
	s.AddTool(deleteTool(), deleteHandler(repo, linker))
	s.AddTool(batchTool(), batchHandler(repo, linker))
	s.AddTool(checkTool(), checkHandler(linker))
	s.AddTool(trashTool(), trashHandler(repo, store, linker))
	s.AddTool(restoreTool(), restoreHandler(repo, store, index))
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename or move a note and rewrite every wikilink to it, preserving aliases and heading anchors. For cross-vault moves set source_vault and dest_vault and give only the path that lives in this vault."),
		mcp.WithString("old_path",
			mcp.Description("Current vault-relative path of the note (omit for the destination side of a cross-vault move)"),
		),
		mcp.WithString("new_path",
			mcp.Description("New vault-relative path of the note (omit for the source side of a cross-vault move)"),
		),
		mcp.WithString("source_vault",
			mcp.Description("Name of the vault the note is moving out of (cross-vault moves only)"),
		),
		mcp.WithString("dest_vault",
			mcp.Description("Name of the vault the note is moving into (cross-vault moves only)"),
		),
	)
}

func renameHandler(repo ports.VaultRepository, linker *application.Linker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameCommand(repo, linker,
			req.GetString("old_path", ""), req.GetString("new_path", ""))
		cmd.SourceVault = req.GetString("source_vault", "")
		cmd.DestVault = req.GetString("dest_vault", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a note and strike through every wikilink to it so the dead references stay visible."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path of the note to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(repo ports.VaultRepository, linker *application.Linker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteCommand(repo, linker, req.GetString("path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- batch ---

type batchOp struct {
	OldPath     string `json:"old_path"`
	NewPath     string `json:"new_path"`
	SourceVault string `json:"source_vault,omitempty"`
	DestVault   string `json:"dest_vault,omitempty"`
}

func batchTool() mcp.Tool {
	return mcp.NewTool("batch_update",
		mcp.WithDescription(`Apply multiple rename/delete operations in one pass, deepest paths first. Takes a JSON array of operations, e.g. [{"old_path":"a/old.md","new_path":"a/new.md"},{"old_path":"b/gone.md","new_path":""}]. An empty new_path deletes the note's links.`),
		mcp.WithString("updates",
			mcp.Description("JSON array of {old_path, new_path, source_vault, dest_vault} objects"),
			mcp.Required(),
		),
	)
}

func batchHandler(repo ports.VaultRepository, linker *application.Linker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("updates", "")
		var parsed []batchOp
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return toolError(fmt.Errorf("invalid updates JSON: %w", err))
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

		cmd := commands.NewBatchCommand(repo, linker, ops)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- check ---

func checkTool() mcp.Tool {
	return mcp.NewTool("check_links",
		mcp.WithDescription("Scan the whole vault for wikilinks whose target note does not exist and annotate each broken occurrence with a warning callout."),
	)
}

func checkHandler(linker *application.Linker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCheckCommand(linker)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- trash ---

func trashTool() mcp.Tool {
	return mcp.NewTool("trash",
		mcp.WithDescription("Move a directory into the vault trash, record it in the trash manifest, and strike through every link to the removed notes."),
		mcp.WithString("dir_path",
			mcp.Description("Vault-relative path of the directory to trash"),
			mcp.Required(),
		),
	)
}

func trashHandler(repo ports.VaultRepository, store ports.TrashStore, linker *application.Linker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewTrashCommand(repo, store, linker, req.GetString("dir_path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- restore ---

func restoreTool() mcp.Tool {
	return mcp.NewTool("restore",
		mcp.WithDescription("Restore a trashed directory back to its original location. Use list_trash to find the entry ID."),
		mcp.WithNumber("entry_id",
			mcp.Description("ID of the trash manifest entry to restore"),
			mcp.Required(),
		),
	)
}

func restoreHandler(repo ports.VaultRepository, store ports.TrashStore, index ports.LinkIndexProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRestoreCommand(repo, store, index, int64(req.GetInt("entry_id", 0)))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
