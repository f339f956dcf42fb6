package table

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Codec reads and writes a whole table in one on-disk format.
type Codec interface {
	// Read loads the entire file into a DataFrame. The first row is
	// treated as the header.
	Read(path string) (dataframe.DataFrame, error)
	// Write replaces the file with the DataFrame's contents, header
	// included.
	Write(df dataframe.DataFrame, path string) error
}

// NewCodec returns the codec for the given format.
func NewCodec(format Format) (Codec, error) {
	switch format {
	case FormatCSV:
		return &csvCodec{}, nil
	case FormatXLSX:
		return &xlsxCodec{}, nil
	case FormatXLS:
		return &xlsCodec{}, nil
	default:
		return nil, fmt.Errorf("no codec for format: %s", format)
	}
}

// frameFromRecords builds a DataFrame from raw records, first record as the
// header. gota's LoadRecords rejects a header-only input, but a table with
// columns and zero rows is a valid state here, so that case is built
// column by column instead.
func frameFromRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.New("file has no header row")
	}
	if len(records) == 1 {
		columns := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			columns[i] = series.New([]string{}, series.String, name)
		}
		df := dataframe.New(columns...)
		return df, df.Error()
	}
	df := dataframe.LoadRecords(records)
	return df, df.Error()
}

// normalizeRecords pads ragged rows to the header width. Spreadsheet readers
// drop trailing empty cells per row.
func normalizeRecords(records [][]string) [][]string {
	if len(records) == 0 {
		return records
	}
	width := len(records[0])
	for i, row := range records {
		for len(row) < width {
			row = append(row, "")
		}
		records[i] = row[:width]
	}
	return records
}
