package excel

import (
	"os"
	"path/filepath"
	"testing"

	"godunn/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataReader_CSV(t *testing.T) {
	path := writeTempCSV(t, "Enzyme ,Treatment,Viability\nAChE,0,98.5\nAChE,1,72.1\n")

	table, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"Enzyme", "Treatment", "Viability"}, table.Columns)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "98.5", table.Cell(0, 2))
	assert.Equal(t, "1", table.Cell(1, 1))
}

func TestDataReader_CSVHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "Enzyme,Treatment,Viability\n")

	_, err := NewDataReader(path).ReadData()
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestDataReader_MissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").ReadData()
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
	assert.Equal(t, errors.CodeReadFailed, errors.GetCode(err))
}

func TestDataReader_CorruptXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := NewDataReader(path).ReadData()
	require.Error(t, err)
	assert.Equal(t, errors.CodeReadFailed, errors.GetCode(err))
}

func TestNewDataReader_TypeDetection(t *testing.T) {
	assert.Equal(t, "csv", NewDataReader("foo.CSV").fileType)
	assert.Equal(t, "xlsx", NewDataReader("foo.xlsx").fileType)
	assert.Equal(t, "xlsx", NewDataReader("foo").fileType)
}
