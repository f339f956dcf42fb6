package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	imcp "github.com/wxyzh/table-mcp-server/internal/mcp"
	"github.com/wxyzh/table-mcp-server/internal/table"
)

type QueryArguments struct {
	Query string `zog:"query"`
}

var queryArgumentsSchema = z.Struct(z.Shape{
	"query": z.String().Required(),
})

func AddQueryTool(server *server.MCPServer, store *table.Store) {
	server.AddTool(mcp.NewTool("query",
		mcp.WithDescription("Execute a query on the Excel/CSV file. "+
			"The query is a boolean predicate over column names, e.g. \"age > 30\"."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Boolean row predicate to execute"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleQuery(store, request)
	})
}

func handleQuery(store *table.Store, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := QueryArguments{}
	issues := queryArgumentsSchema.Parse(request.GetArguments(), &args)
	if len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return queryRows(store, args.Query)
}

func queryRows(store *table.Store, predicate string) (*mcp.CallToolResult, error) {
	config, issues := LoadConfig()
	if len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	df, err := store.Load()
	if err != nil {
		return newToolResultOpError(err), nil
	}
	rows, err := table.MatchRows(df, predicate)
	if err != nil {
		return newToolResultOpError(err), nil
	}
	if limit := config.TABLE_MCP_QUERY_ROW_LIMIT; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return newToolResultJSON(rows)
}
