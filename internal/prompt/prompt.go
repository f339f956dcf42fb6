// Package prompt registers the table-mcp guided-workflow prompt: a static
// template that walks a client through the available file formats and
// operations.
package prompt

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const promptName = "table-mcp"

var (
	fileTypes  = []string{"xls", "xlsx", "csv"}
	operations = []string{"query", "update_item", "delete_item", "list_columns"}
)

const promptTemplate = `
The assistant's goal is to demonstrate the capabilities of the Table MCP Server. This server allows interaction with Excel (xls/xlsx) and CSV files through various operations.

You have selected the MCP menu item and chosen the 'table-mcp' prompt.

This server provides tools to:
1. Query data from Excel/CSV files using boolean row predicates
2. Update existing records
3. Delete records
4. List columns
5. Handle both Excel (xls/xlsx) and CSV formats

Available tools and examples:

1. query: Execute row-predicate queries
   Example:
   ` + "```" + `
   Input: "query", {"query": "age > 30"}
   Output: Returns records where age is greater than 30
   ` + "```" + `

2. update_item: Update existing records
   Example:
   ` + "```" + `
   Input: "update_item", {
       "index": 1,
       "data": {"name": "Updated Name"}
   }
   Output: Updates the name of the record at index 1
   ` + "```" + `

3. delete_item: Delete records
   Example:
   ` + "```" + `
   Input: "delete_item", {"index": 1}
   Output: Deletes the record at index 1
   ` + "```" + `

Let's work with your file and perform some operations based on your needs.

<mcp>
Tools:
- Use query to search and filter data
- Use update_item to modify existing records
- Use delete_item to remove records

Resources:
- File content can be accessed and modified
- Changes are saved automatically
- Data integrity is maintained throughout operations
</mcp>

Would you like to:
1. Query existing data
2. Update records
3. Delete records

Please let me know your preferred operation and I'll guide you through the process.
`

func AddTableWorkflowPrompt(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt(promptName,
		mcp.WithPromptDescription("A prompt to work with Excel (xls/xlsx) and CSV files using the Table MCP Server"),
		mcp.WithArgument("file_type",
			mcp.ArgumentDescription(fmt.Sprintf("Type of file to work with (%s)", strings.Join(fileTypes, ", "))),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("operation",
			mcp.ArgumentDescription(fmt.Sprintf("Operation to perform (%s)", strings.Join(operations, ", "))),
			mcp.RequiredArgument(),
		),
	), handleGetPrompt)
}

func handleGetPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return buildPromptResult(request.Params.Name, request.Params.Arguments)
}

func buildPromptResult(name string, arguments map[string]string) (*mcp.GetPromptResult, error) {
	if name != promptName {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
	fileType, ok := arguments["file_type"]
	if !ok {
		return nil, fmt.Errorf("missing required argument: file_type")
	}
	if !slices.Contains(fileTypes, strings.ToLower(fileType)) {
		return nil, fmt.Errorf("file type must be one of: %s", strings.Join(fileTypes, ", "))
	}
	if operation, ok := arguments["operation"]; ok {
		if !slices.Contains(operations, strings.ToLower(operation)) {
			return nil, fmt.Errorf("operation must be one of: %s", strings.Join(operations, ", "))
		}
	}

	return mcp.NewGetPromptResult(
		"Guided workflow for Excel/CSV operations",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(strings.TrimSpace(promptTemplate)),
			),
		},
	), nil
}
