// Package config holds the startup configuration. The backing-file path is
// validated once here and then injected into the store; nothing re-validates
// or changes it at runtime.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/wxyzh/table-mcp-server/internal/table"
)

const (
	// TransportStdio serves the MCP protocol over stdin/stdout.
	TransportStdio = "stdio"
	// TransportSSE serves the MCP protocol over HTTP server-sent events.
	TransportSSE = "sse"
)

// Config is the server's startup configuration. Values come from an optional
// YAML file, overridden by command-line flags.
type Config struct {
	FilePath  string `yaml:"file_path"`
	Transport string `yaml:"transport"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FilePath:  "data/example.xls",
		Transport: TransportStdio,
		Host:      "localhost",
		Port:      8000,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks the transport selection and the backing file, returning
// the detected file format. A missing file or an unsupported extension is a
// startup-fatal error.
func (c Config) Validate() (table.Format, error) {
	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		return "", fmt.Errorf("unsupported transport: %s", c.Transport)
	}
	return ValidateFile(c.FilePath)
}

// ValidateFile checks that the backing file exists and carries one of the
// supported extensions.
func ValidateFile(path string) (table.Format, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return table.DetectFormat(path)
}
