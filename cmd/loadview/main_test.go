package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) []string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return strings.Split(strings.TrimRight(ansi.Strip(out.String()), "\n"), "\n")
}

func TestStaticFrameWithoutTerminal(t *testing.T) {
	path := writeConfig(t, "skeleton:\n  lines: 2\n  label: From file\n")

	lines := run(t, "--config", path)
	require.Len(t, lines, 3)
	require.Equal(t, "From file", lines[0])
	require.Greater(t, ansi.StringWidth(lines[1]), ansi.StringWidth(lines[2]))
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "skeleton:\n  lines: 5\n")

	lines := run(t, "--config", path, "--lines", "1", "--label", "Fetching")
	require.Len(t, lines, 2)
	require.Equal(t, "Fetching", lines[0])
}

func TestNegativeLinesClamped(t *testing.T) {
	path := writeConfig(t, "log:\n  level: error\n")

	lines := run(t, "--config", path, "--lines=-4")
	require.Equal(t, []string{"Loading content"}, lines)
}
