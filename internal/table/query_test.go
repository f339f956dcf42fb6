package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRowsComparison(t *testing.T) {
	df := loadTestFrame(t)

	rows, err := MatchRows(df, "age > 30")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0]["name"])
}

func TestMatchRowsCompoundPredicate(t *testing.T) {
	df := loadTestFrame(t)

	rows, err := MatchRows(df, `age >= 25 && name != "Jane"`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "John", rows[0]["name"])
	assert.Equal(t, "Bob", rows[1]["name"])
}

func TestMatchRowsNoMatches(t *testing.T) {
	df := loadTestFrame(t)

	rows, err := MatchRows(df, "age > 100")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMatchRowsPreservesRowOrder(t *testing.T) {
	df := loadTestFrame(t)

	rows, err := MatchRows(df, "age < 40")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "John", rows[0]["name"])
	assert.Equal(t, "Jane", rows[1]["name"])
	assert.Equal(t, "Bob", rows[2]["name"])
}

func TestMatchRowsMalformedPredicate(t *testing.T) {
	df := loadTestFrame(t)

	_, err := MatchRows(df, "age >")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestMatchRowsUnknownColumn(t *testing.T) {
	df := loadTestFrame(t)

	_, err := MatchRows(df, "salary > 1000")
	require.Error(t, err)
}

func TestMatchRowsNonBooleanPredicate(t *testing.T) {
	df := loadTestFrame(t)

	// Must come back as an error, never a panic: the process serves
	// every client.
	_, err := MatchRows(df, "age + 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boolean predicate")
}

func TestMatchRowsEmptyTable(t *testing.T) {
	df, err := frameFromRecords([][]string{{"id", "name"}})
	require.NoError(t, err)

	rows, err := MatchRows(df, "id > 0")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
