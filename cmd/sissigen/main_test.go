package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runIn(t *testing.T, dir string, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_UnknownCommand(t *testing.T) {
	tests := map[string][]string{
		"unknown": {"deploy"},
		"missing": {},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			code, _, stderr := runIn(t, dir, args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "unrecognized command")
			assert.Empty(t, entries(t, dir), "no files may be created")
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runIn(t, t.TempDir(), "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "sissigen")
}

func TestRun_InitThenBuild(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runIn(t, dir, "init")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Initialized sissigen project")
	assert.FileExists(t, filepath.Join(dir, "templates", "main.html"))
	assert.DirExists(t, filepath.Join(dir, "posts"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "hello.md"), []byte("# Hello\n\nWorld paragraph.\n"), 0o644))

	code, _, stderr = runIn(t, dir, "build")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Making post")
	assert.Contains(t, stderr, "Writing files.")

	page, err := os.ReadFile(filepath.Join(dir, "site", "hello.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Hello</h1>")

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/site/hello.html"`)
	assert.Contains(t, string(index), "World paragraph.")
	assert.FileExists(t, filepath.Join(dir, "site", "static", "style.css"))
}

func TestRun_BuildWithoutProject(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := runIn(t, dir, "build")
	assert.Equal(t, 7, code)
	assert.Contains(t, stderr, "required directory not found")
	assert.NoDirExists(t, filepath.Join(dir, "site"))
}

func TestRun_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sissigen.yaml"), []byte("logging: [\n"), 0o644))
	code, _, stderr := runIn(t, dir, "build")
	assert.Equal(t, 7, code)
	assert.Contains(t, stderr, "failed to parse config file")
}
