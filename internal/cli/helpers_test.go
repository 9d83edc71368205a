package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/input"
	"github.com/mrz1836/sigil/internal/tui"
)

// setupCLITest isolates a test from the user's config: SIGIL_HOME points at a
// fresh directory and the working directory is another. It returns the
// working directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	t.Setenv("SIGIL_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	work := t.TempDir()
	t.Chdir(work)

	origTerminal := tui.IsTerminal
	tui.IsTerminal = func() bool { return false }
	t.Cleanup(func() { tui.IsTerminal = origTerminal })
	return work
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	CloseLogFile()
	return stdout.String(), stderr.String(), err
}

// withStdin makes the "-" input designator read data.
func withStdin(t *testing.T, data string) {
	t.Helper()
	orig := input.Stdin
	input.Stdin = strings.NewReader(data)
	t.Cleanup(func() { input.Stdin = orig })
}

// writeProjectConfig writes .sigil/config.yaml in the working directory.
func writeProjectConfig(t *testing.T, work, content string) {
	t.Helper()
	dir := filepath.Join(work, ".sigil")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
