package table

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// ErrEmptyTable reports a row operation against a table with no data rows.
var ErrEmptyTable = errors.New("the table is empty")

// UpdateRow sets the given columns of the row at a positional index and
// returns the resulting table. Every column is checked for existence before
// any cell is written, so a bad column name rejects the whole update.
func UpdateRow(df dataframe.DataFrame, index int, data map[string]any) (dataframe.DataFrame, error) {
	if index < 0 || index >= df.Nrow() {
		return dataframe.DataFrame{}, fmt.Errorf("row index %d not found", index)
	}
	names := df.Names()
	for column := range data {
		if !slices.Contains(names, column) {
			return dataframe.DataFrame{}, fmt.Errorf("column %s not found", column)
		}
	}

	records := df.Records()
	for column, value := range data {
		col := slices.Index(names, column)
		records[index+1][col] = renderValue(value)
	}
	return frameFromRecords(records)
}

// DeleteRowAt drops the row at a positional index. Surviving rows are not
// renumbered until the next load.
func DeleteRowAt(df dataframe.DataFrame, index int) (dataframe.DataFrame, error) {
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, ErrEmptyTable
	}
	if index < 0 || index >= df.Nrow() {
		return dataframe.DataFrame{}, fmt.Errorf("row index %d not found", index)
	}

	records := df.Records()
	records = append(records[:index+1], records[index+2:]...)
	return frameFromRecords(records)
}

// DeleteRowsByValue drops every row whose value in the given column equals
// the target value.
func DeleteRowsByValue(df dataframe.DataFrame, column string, value any) (dataframe.DataFrame, error) {
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, ErrEmptyTable
	}
	names := df.Names()
	col := slices.Index(names, column)
	if col < 0 {
		return dataframe.DataFrame{}, fmt.Errorf("column %s not found", column)
	}

	target := renderValue(value)
	records := df.Records()
	kept := make([][]string, 0, len(records))
	kept = append(kept, records[0])
	for _, row := range records[1:] {
		if row[col] != target {
			kept = append(kept, row)
		}
	}
	if len(kept) == len(records) {
		return dataframe.DataFrame{}, fmt.Errorf("value %v not found in column %s", value, column)
	}
	return frameFromRecords(kept)
}

// renderValue converts a JSON-decoded argument value to its cell
// representation. JSON numbers arrive as float64 even when integral.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
