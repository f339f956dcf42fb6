package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	imcp "github.com/wxyzh/table-mcp-server/internal/mcp"
	"github.com/wxyzh/table-mcp-server/internal/table"
)

type UpdateItemArguments struct {
	Index int `zog:"index"`
}

var updateItemArgumentsSchema = z.Struct(z.Shape{
	"index": z.Int().Required(),
})

func AddUpdateItemTool(server *server.MCPServer, store *table.Store) {
	server.AddTool(mcp.NewTool("update_item",
		mcp.WithDescription("Update a row in the Excel/CSV file"),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Row index to update"),
		),
		imcp.WithObject("data",
			mcp.Required(),
			mcp.Description("Column name to new value mapping"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateItem(store, request)
	})
}

func handleUpdateItem(store *table.Store, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.GetArguments()
	args := UpdateItemArguments{}
	issues := updateItemArgumentsSchema.Parse(arguments, &args)
	if len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	// zog には map スキーマがないため、自力でパースする
	data, ok := arguments["data"].(map[string]any)
	if !ok {
		return imcp.NewToolResultInvalidArgumentError("data must be an object mapping column names to values"), nil
	}
	return updateItem(store, args.Index, data)
}

func updateItem(store *table.Store, index int, data map[string]any) (*mcp.CallToolResult, error) {
	df, err := store.Load()
	if err != nil {
		return newToolResultOpError(err), nil
	}
	updated, err := table.UpdateRow(df, index, data)
	if err != nil {
		return newToolResultOpError(err), nil
	}
	if err := store.Save(updated); err != nil {
		return newToolResultOpError(err), nil
	}
	return mcp.NewToolResultText("Item updated successfully"), nil
}
