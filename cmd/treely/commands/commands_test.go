package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	root := newRoot()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n"), 0o644))
	return dir
}

func TestFsCommand(t *testing.T) {
	out := runCommand(t, "fs", testDir(t), "--no-color")
	assert.Contains(t, out, "├── go.mod")
	assert.Contains(t, out, "└── src")
	assert.Contains(t, out, "    └── main.go")
	assert.Contains(t, out, "1 directories, 2 files")
}

func TestFsCommand_Level(t *testing.T) {
	out := runCommand(t, "fs", testDir(t), "--no-color", "-L", "1")
	assert.Contains(t, out, "└── src")
	assert.NotContains(t, out, "main.go")
}

func TestFsCommand_DirsOnly(t *testing.T) {
	out := runCommand(t, "fs", testDir(t), "--no-color", "-d")
	assert.NotContains(t, out, "go.mod")
	assert.Contains(t, out, "1 directories, 0 files")
}

func TestFsCommand_BadIgnore(t *testing.T) {
	root := newRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fs", testDir(t), "--no-color", "-I", "["})
	assert.Error(t, root.Execute())
}

func TestJsonCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"name":"ann","tags":["go"]}`), 0o644))

	out := runCommand(t, "json", file, "--no-color")
	assert.Equal(t, "{}\n├── name: \"ann\"\n└── tags\n    └── \"go\"\n", out)
}

func TestJsonCommand_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"name":`), 0o644))

	root := newRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"json", file, "--no-color"})
	assert.Error(t, root.Execute())
}
