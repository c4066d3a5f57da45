package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultkeeper/internal/application/commands"
	"vaultkeeper/internal/ports"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, index ports.LinkIndexProvider, store ports.TrashStore) {
	s.AddTool(backlinksTool(), backlinksHandler(index))
	s.AddTool(listTrashTool(), listTrashHandler(store))
}

// --- backlinks ---

func backlinksTool() mcp.Tool {
	return mcp.NewTool("backlinks",
		mcp.WithDescription("List every note that links to a target note, with the line and surrounding text of each wikilink occurrence."),
		mcp.WithString("target",
			mcp.Description("Target note name or path (e.g. 'Project Plan' or 'projects/Project Plan.md')"),
			mcp.Required(),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Rebuild the link index before querying instead of using the cached one"),
		),
	)
}

func backlinksHandler(index ports.LinkIndexProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewBacklinksCommand(index, req.GetString("target", ""))
		cmd.Force = req.GetBool("refresh", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Entries) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No notes link to %s.", result.Target)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n\n", result.Message)
		for _, entry := range result.Entries {
			fmt.Fprintf(&sb, "%s\n", entry.SourcePath)
			for _, occ := range entry.Occurrences {
				fmt.Fprintf(&sb, "  %d: %s\n", occ.Line, occ.Context)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_trash ---

func listTrashTool() mcp.Tool {
	return mcp.NewTool("list_trash",
		mcp.WithDescription("List trashed directories recorded in the trash manifest, newest first."),
		mcp.WithBoolean("include_restored",
			mcp.Description("Also list entries that were already restored"),
		),
	)
}

func listTrashHandler(store ports.TrashStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := store.List(req.GetBool("include_restored", false))
		if err != nil {
			return toolError(err)
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText("Trash is empty."), nil
		}

		var sb strings.Builder
		for _, e := range entries {
			status := ""
			if e.Restored {
				status = "  (restored)"
			}
			fmt.Fprintf(&sb, "%d  %s  ->  %s%s\n", e.ID, e.OriginalPath, e.TrashPath, status)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
