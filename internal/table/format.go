package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the on-disk encoding of the backing file.
type Format string

const (
	// FormatXLS is the legacy BIFF spreadsheet format.
	FormatXLS Format = "xls"
	// FormatXLSX is the OOXML spreadsheet format.
	FormatXLSX Format = "xlsx"
	// FormatCSV is comma-delimited text.
	FormatCSV Format = "csv"
)

// DetectFormat infers the file format from the path's extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "xls":
		return FormatXLS, nil
	case "xlsx":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", ext)
	}
}
