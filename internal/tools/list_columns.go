package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wxyzh/table-mcp-server/internal/table"
)

func AddListColumnsTool(server *server.MCPServer, store *table.Store) {
	server.AddTool(mcp.NewTool("list_columns",
		mcp.WithDescription("List all columns in the Excel/CSV file"),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listColumns(store)
	})
}

func listColumns(store *table.Store) (*mcp.CallToolResult, error) {
	df, err := store.Load()
	if err != nil {
		return newToolResultOpError(err), nil
	}
	return newToolResultJSON(df.Names())
}
