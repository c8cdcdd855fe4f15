package fsops_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsops-project/fsops/pkg/fserr"
	"github.com/fsops-project/fsops/pkg/fsops"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListDirectory_SortedByFullPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zebra.txt"), "")
	writeFile(t, filepath.Join(dir, "alpha.txt"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "middle"), 0755))

	entries, err := fsops.ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	}))
	assert.Equal(t, "alpha.txt", entries[0].Name)
	assert.Equal(t, filepath.Join(dir, "alpha.txt"), entries[0].Path)
}

func TestListDirectory_Deterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	first, err := fsops.ListDirectory(dir)
	require.NoError(t, err)
	second, err := fsops.ListDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListDirectory_NotFound(t *testing.T) {
	_, err := fsops.ListDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fserr.ErrNotFound)
}

func TestListFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "deep", "leaf.txt"), "")

	files, err := fsops.ListFiles(dir)
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{
		filepath.Join(dir, "sub", "deep", "leaf.txt"),
		filepath.Join(dir, "sub", "nested.txt"),
		filepath.Join(dir, "top.txt"),
	}, files)
}

func TestListFiles_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "only", "dirs"), 0755))

	files, err := fsops.ListFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListSubdirectories_Sorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b", "inner"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0755))
	writeFile(t, filepath.Join(dir, "b", "file.txt"), "")

	dirs, err := fsops.ListSubdirectories(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "b"),
		filepath.Join(dir, "b", "inner"),
	}, dirs)
}

func TestListSubdirectories_ExcludesRoot(t *testing.T) {
	dir := t.TempDir()
	dirs, err := fsops.ListSubdirectories(dir)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}
