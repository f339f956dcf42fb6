package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// WithAny adds an untyped property to the tool schema. Used for arguments
// that accept more than one JSON type, like a row identifier that may be a
// number or a string.
func WithAny(name string, opts ...mcp.PropertyOption) mcp.ToolOption {
	return withSchema(name, map[string]any{}, opts...)
}

// WithObject adds an object property to the tool schema.
func WithObject(name string, opts ...mcp.PropertyOption) mcp.ToolOption {
	return withSchema(name, map[string]any{"type": "object"}, opts...)
}

func withSchema(name string, schema map[string]any, opts ...mcp.PropertyOption) mcp.ToolOption {
	return func(t *mcp.Tool) {
		for _, opt := range opts {
			opt(schema)
		}

		// Remove required from property schema and add to InputSchema.required
		if required, ok := schema["required"].(bool); ok && required {
			delete(schema, "required")
			if t.InputSchema.Required == nil {
				t.InputSchema.Required = []string{name}
			} else {
				t.InputSchema.Required = append(t.InputSchema.Required, name)
			}
		}

		t.InputSchema.Properties[name] = schema
	}
}
