package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundled(t *testing.T) {
	l := Loader{}
	for _, name := range []string{Files, FileAliases, Folders, FolderAliases, DarkColors, LightColors} {
		table, err := l.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, table, name)
	}

	files, err := l.Load(Files)
	require.NoError(t, err)
	assert.Equal(t, `\uf15b`, files["file"])

	folders, err := l.Load(Folders)
	require.NoError(t, err)
	assert.Contains(t, folders, "folder")
}

func TestLoadUnknownTable(t *testing.T) {
	_, err := Loader{}.Load("nope.yaml")
	require.Error(t, err)
}

func TestLoadUserOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Files), []byte("txt: 'T'\nfoo: 'F'\n"), 0o644))

	table, err := Loader{UserDir: dir}.Load(Files)
	require.NoError(t, err)
	assert.Equal(t, "T", table["txt"])
	assert.Equal(t, "F", table["foo"])
	assert.Equal(t, `\uf15b`, table["file"], "bundled keys survive the merge")
}

func TestLoadUserOverrideMissingOrEmpty(t *testing.T) {
	dir := t.TempDir()
	table, err := Loader{UserDir: dir}.Load(DarkColors)
	require.NoError(t, err)
	assert.Equal(t, "#1e90ff", table["dir"])

	require.NoError(t, os.WriteFile(filepath.Join(dir, DarkColors), []byte("  \n"), 0o644))
	table, err = Loader{UserDir: dir}.Load(DarkColors)
	require.NoError(t, err)
	assert.Equal(t, "#1e90ff", table["dir"])
}

func TestLoadMalformedUserTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Folders), []byte("- not\n- a map\n"), 0o644))

	_, err := Loader{UserDir: dir}.Load(Folders)
	require.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	tables, err := Loader{}.LoadAll(Files, Folders)
	require.NoError(t, err)
	assert.Len(t, tables, 2)
	assert.Contains(t, tables[Files], "go")
}
