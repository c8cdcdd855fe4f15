package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replicates testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"list", "tree", "mkdir", "remove", "delete", "rename", "read", "same", "version"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %s must be registered", name)
	}
}

func TestMkdirThenRemove(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	target := filepath.Join(dir, "a", "b")

	require.NoError(t, runCommand(t, "mkdir", target))
	assert.DirExists(t, target)

	require.NoError(t, runCommand(t, "remove", filepath.Join(dir, "a")))
	assert.NoDirExists(t, filepath.Join(dir, "a"))
}

func TestRenameCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	require.NoError(t, runCommand(t, "rename", src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

func TestSameCommand_EqualPaths(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, runCommand(t, "same", filepath.Join(dir, "x"), filepath.Join(dir, "x")+string(filepath.Separator)))
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, runCommand(t, "version"))
}
