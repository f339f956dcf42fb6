package tools

import (
	"context"
	"math"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	imcp "github.com/wxyzh/table-mcp-server/internal/mcp"
	"github.com/wxyzh/table-mcp-server/internal/table"
)

// defaultIDColumn selects positional-index deletion. Any other id_column
// switches to value matching against that column.
const defaultIDColumn = "id"

type DeleteItemArguments struct {
	IDColumn string `zog:"id_column"`
}

var deleteItemArgumentsSchema = z.Struct(z.Shape{
	"id_column": z.String().Default(defaultIDColumn),
})

func AddDeleteItemTool(server *server.MCPServer, store *table.Store) {
	server.AddTool(mcp.NewTool("delete_item",
		mcp.WithDescription("Delete a row from the Excel/CSV file. "+
			"By default index is the positional row index; set id_column to "+
			"delete every row whose value in that column equals index."),
		imcp.WithAny("index",
			mcp.Required(),
			mcp.Description("Row index to delete, or an id value when id_column is set"),
		),
		mcp.WithString("id_column",
			mcp.Description("Optional ID column name"),
			mcp.DefaultString(defaultIDColumn),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteItem(store, request)
	})
}

func handleDeleteItem(store *table.Store, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.GetArguments()
	args := DeleteItemArguments{}
	issues := deleteItemArgumentsSchema.Parse(arguments, &args)
	if len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	// index は数値にも文字列にもなり得るため、自力でパースする
	index, ok := arguments["index"]
	if !ok {
		return imcp.NewToolResultInvalidArgumentError("index is required"), nil
	}
	return deleteItem(store, index, args.IDColumn)
}

func deleteItem(store *table.Store, index any, idColumn string) (*mcp.CallToolResult, error) {
	df, err := store.Load()
	if err != nil {
		return newToolResultOpError(err), nil
	}

	var remaining = df
	if idColumn == defaultIDColumn {
		position, ok := index.(float64)
		if !ok || position != math.Trunc(position) {
			return imcp.NewToolResultInvalidArgumentError("index must be an integer when id_column is \"id\""), nil
		}
		remaining, err = table.DeleteRowAt(df, int(position))
	} else {
		remaining, err = table.DeleteRowsByValue(df, idColumn, index)
	}
	if err != nil {
		return newToolResultOpError(err), nil
	}
	if err := store.Save(remaining); err != nil {
		return newToolResultOpError(err), nil
	}
	return mcp.NewToolResultText("Item deleted successfully"), nil
}
