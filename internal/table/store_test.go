package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreUnsupportedFormat(t *testing.T) {
	_, err := NewStore("data/example.txt")
	require.Error(t, err)
}

func TestStoreLoadSaveCycle(t *testing.T) {
	path := writeTempCSV(t, "id,name,age\n1,John,25\n2,Jane,30\n3,Bob,35\n")
	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	df, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())

	updated, err := UpdateRow(df, 2, map[string]any{"age": float64(36)})
	require.NoError(t, err)
	require.NoError(t, store.Save(updated))

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "36", reloaded.Elem(2, 2).String())
}

func TestStoreLoadAlwaysFresh(t *testing.T) {
	path := writeTempCSV(t, "id,name\n1,John\n")
	store, err := NewStore(path)
	require.NoError(t, err)

	first, err := store.Load()
	require.NoError(t, err)

	df, err := frameFromRecords([][]string{
		{"id", "name"},
		{"1", "John"},
		{"2", "Jane"},
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(df))

	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Nrow())
	assert.Equal(t, 2, second.Nrow())
}

func TestStoreXLSReadOnly(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "legacy.xls"))
	require.NoError(t, err)

	df, err := frameFromRecords([][]string{{"id"}, {"1"}})
	require.NoError(t, err)

	err = store.Save(df)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
