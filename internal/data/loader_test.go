package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "fruit.csv", "id,name,price\n1,apple,0.5\n2,banana,0.3\n")

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, "fruit", ds.Name)
	require.Len(t, ds.Columns, 3)
	assert.Equal(t, "name", ds.Columns[1].Title)
	require.Equal(t, 2, ds.RowCount())
	assert.Equal(t, "banana", ds.Cell(1, 1))
}

func TestLoadCSVPadsRaggedRows(t *testing.T) {
	path := writeCSV(t, "ragged.csv", "a,b,c\n1\n2,3,4,5\n")

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	require.Equal(t, 2, ds.RowCount())
	assert.Len(t, ds.Rows[0].Cells, 3, "short rows padded to the column count")
	assert.Equal(t, "", ds.Cell(0, 2))
	assert.Len(t, ds.Rows[1].Cells, 3, "long rows truncated to the column count")
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeCSV(t, "header.csv", "a,b\n")

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
}
