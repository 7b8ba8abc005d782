package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica-vista-me/db"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStore_ReadMissingCollection(t *testing.T) {
	store, err := db.New(t.TempDir())
	require.NoError(t, err)

	var records []record
	found, err := store.Read("frames", &records)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, records)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	store, err := db.New(t.TempDir())
	require.NoError(t, err)

	in := []record{{ID: "1", Name: "Aviator"}, {ID: "2", Name: "Wayfarer"}}
	require.NoError(t, store.Write("frames", in))

	var out []record
	found, err := store.Read("frames", &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileStore_WriteReplacesWholeCollection(t *testing.T) {
	store, err := db.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write("frames", []record{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, store.Write("frames", []record{{ID: "3"}}))

	var out []record
	_, err = store.Read("frames", &out)
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "3"}}, out)
}

func TestFileStore_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := db.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write("frames", []record{{ID: "1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "frames.json", entries[0].Name())
}

func TestFileStore_ReadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := db.New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "frames.json"), []byte("{not json"), 0644))

	var out []record
	_, err = store.Read("frames", &out)
	assert.Error(t, err)
}

func TestFileStore_Exists(t *testing.T) {
	store, err := db.New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, store.Exists("frames"))
	require.NoError(t, store.Write("frames", []record{}))
	assert.True(t, store.Exists("frames"))
}
