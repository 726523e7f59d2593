// Package mcp exposes the Dash query operations as MCP tools. Each tool
// receives its collaborators through its constructor and always returns
// a well-formed JSON result: expected failures (Dash down, bad input,
// empty results) travel in the result's error field, never as a
// protocol-level fault.
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals v into a text tool result. Marshaling failure is
// the one case that surfaces as a hard error: the result types here are
// plain structs and cannot fail to serialize in practice.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
