// Package tools implements the MCP tools exposed by the server: query,
// update_item, delete_item and list_columns. Each tool runs one full
// load → act → persist cycle against the shared backing file.
//
// Every failure below the argument-validation boundary is returned as an
// error result with an "Error: ..." message, never as a protocol fault.
// Success payloads are JSON rendered into a single text content block.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newToolResultJSON(payload any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func newToolResultOpError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err))
}
