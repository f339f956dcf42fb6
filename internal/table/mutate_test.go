package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRow(t *testing.T) {
	df := loadTestFrame(t)

	updated, err := UpdateRow(df, 1, map[string]any{"name": "Updated Name"})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Elem(1, 1).String())
	// other rows untouched
	assert.Equal(t, "John", updated.Elem(0, 1).String())
	assert.Equal(t, "Bob", updated.Elem(2, 1).String())
}

func TestUpdateRowMultipleColumns(t *testing.T) {
	df := loadTestFrame(t)

	updated, err := UpdateRow(df, 0, map[string]any{"name": "Johnny", "age": float64(26)})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.Elem(0, 1).String())
	assert.Equal(t, "26", updated.Elem(0, 2).String())
}

func TestUpdateRowIndexNotFound(t *testing.T) {
	df := loadTestFrame(t)

	_, err := UpdateRow(df, 999, map[string]any{"name": "nobody"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "999")
}

func TestUpdateRowUnknownColumnRejectsWholeUpdate(t *testing.T) {
	df := loadTestFrame(t)

	// The valid column comes first in the map, but nothing may be applied:
	// all columns are validated before any cell is written.
	_, err := UpdateRow(df, 0, map[string]any{"name": "Changed", "salary": 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary")
	assert.Equal(t, "John", df.Elem(0, 1).String())
}

func TestDeleteRowAt(t *testing.T) {
	df := loadTestFrame(t)

	remaining, err := DeleteRowAt(df, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining.Nrow())
	assert.Equal(t, "Jane", remaining.Elem(0, 1).String())
}

func TestDeleteRowAtLastRemainingRow(t *testing.T) {
	df, err := frameFromRecords([][]string{
		{"id", "name"},
		{"1", "solo"},
	})
	require.NoError(t, err)

	remaining, err := DeleteRowAt(df, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining.Nrow())
	assert.Equal(t, []string{"id", "name"}, remaining.Names())
}

func TestDeleteRowAtIndexNotFound(t *testing.T) {
	df := loadTestFrame(t)

	_, err := DeleteRowAt(df, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "999")
}

func TestDeleteRowAtEmptyTable(t *testing.T) {
	df, err := frameFromRecords([][]string{{"id", "name"}})
	require.NoError(t, err)

	_, err = DeleteRowAt(df, 0)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestDeleteRowsByValue(t *testing.T) {
	df, err := frameFromRecords([][]string{
		{"custom_id", "name"},
		{"A1", "John"},
		{"A2", "Jane"},
		{"A3", "Bob"},
	})
	require.NoError(t, err)

	remaining, err := DeleteRowsByValue(df, "custom_id", "A2")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining.Nrow())
	assert.NotContains(t, remaining.Col("custom_id").Records(), "A2")
}

func TestDeleteRowsByValueDropsAllMatches(t *testing.T) {
	df, err := frameFromRecords([][]string{
		{"group", "name"},
		{"a", "John"},
		{"b", "Jane"},
		{"a", "Bob"},
	})
	require.NoError(t, err)

	remaining, err := DeleteRowsByValue(df, "group", "a")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining.Nrow())
	assert.Equal(t, "Jane", remaining.Elem(0, 1).String())
}

func TestDeleteRowsByValueNumericID(t *testing.T) {
	df := loadTestFrame(t)

	remaining, err := DeleteRowsByValue(df, "id", float64(2))
	require.NoError(t, err)
	assert.Equal(t, 2, remaining.Nrow())
	assert.NotContains(t, remaining.Col("id").Records(), "2")
}

func TestDeleteRowsByValueColumnNotFound(t *testing.T) {
	df := loadTestFrame(t)

	_, err := DeleteRowsByValue(df, "missing", "A2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestDeleteRowsByValueNoMatch(t *testing.T) {
	df := loadTestFrame(t)

	_, err := DeleteRowsByValue(df, "name", "Nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nobody")
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"text", "text"},
		{float64(30), "30"},
		{float64(2.5), "2.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, renderValue(tt.value))
	}
}
