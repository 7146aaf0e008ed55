package language

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ja", Normalize(" JA "))
	assert.Equal(t, "auto", Normalize("Auto"))
	assert.Equal(t, "", Normalize("   "))
}

func TestTableIsSupported(t *testing.T) {
	table := NewTable()
	assert.True(t, table.IsSupported("ja"))
	assert.True(t, table.IsSupported("EN"))
	assert.True(t, table.IsSupported(Auto))
	assert.False(t, table.IsSupported("xx"))
}

func TestTableName(t *testing.T) {
	table := NewTable()
	assert.Equal(t, "Japanese", table.Name("ja"))
	assert.Equal(t, "Auto detect", table.Name(Auto))
	assert.Equal(t, "xx", table.Name("xx"))
}

func TestTableCodesAutoFirstSorted(t *testing.T) {
	codes := NewTable().Codes()
	require.NotEmpty(t, codes)
	assert.Equal(t, Auto, codes[0])
	for i := 2; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	table, err := LoadTable(filepath.Join(t.TempDir(), "languages.json"))
	require.NoError(t, err)
	assert.True(t, table.IsSupported("ja"))
}

func TestLoadTableCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"languages":{"EO":"Esperanto","ja":"Japanese"}}`), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.True(t, table.IsSupported("eo"))
	assert.Equal(t, "Esperanto", table.Name("EO"))
	assert.False(t, table.IsSupported("en"))

	// "auto" is always present even when the file omits it.
	assert.True(t, table.IsSupported(Auto))
}

func TestLoadTableInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}
