package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process against the data directory dir.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--data", dir, "--team", "Blue Team", "--theme", "dark"}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCLI_AddListDownload(t *testing.T) {
	dir := t.TempDir()
	downloads := t.TempDir()
	t.Setenv("NOTEPAD_DOWNLOADS", downloads)

	out := run(t, dir, "add", "--title", "Daily", "--content", "stand-up")
	assert.Contains(t, out, "Add New Task: saved [")
	id := regexp.MustCompile(`\[(\d+)\]`).FindStringSubmatch(out)[1]

	out = run(t, dir, "list", "--format", "json")
	var notes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Daily", notes[0]["title"])

	out = run(t, dir, "list", "--format", "text")
	assert.Contains(t, out, "Blue Team / dark")
	assert.Contains(t, out, "Daily")

	out = run(t, dir, "download", id)
	assert.Contains(t, out, "Saved Daily.png")
	_, err := os.Stat(filepath.Join(downloads, "Daily.png"))
	assert.NoError(t, err)

	out = run(t, dir, "slots")
	assert.Contains(t, out, "* succinct-notes-blue-team-dark")
}

func TestCLI_AddIncompleteSavesNothing(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "add", "--title", "only title", "--content", "")
	assert.Contains(t, out, "nothing saved")

	out = run(t, dir, "list", "--format", "text")
	assert.Contains(t, out, "No tasks yet. Add one above!")
}

func TestCLI_Teams(t *testing.T) {
	out := run(t, t.TempDir(), "teams")
	assert.Contains(t, out, "* Blue Team")
	assert.Contains(t, out, "#ff69b4")
}
