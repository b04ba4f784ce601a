package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	isolateEnv(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"flo", "--version"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "flo dev (none, unknown, go"), "got %q", stdout)
}

func TestHelpListsCommands(t *testing.T) {
	isolateEnv(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"flo", "--help"}, nil, run)
	assert.Equal(t, 0, exitCode)
	for _, want := range []string{"Core Commands:", "list", "path", "Configuration Commands:", "config"} {
		assert.Contains(t, stdout, want)
	}
}

func TestCompletion(t *testing.T) {
	isolateEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		exitCode, stdout, _ := testcli.Main(t, []string{"flo", "completion", shell}, nil, run)
		assert.Equal(t, 0, exitCode, shell)
		assert.Contains(t, stdout, "flo", shell)
	}
}

func TestCompletionUnknownShell(t *testing.T) {
	isolateEnv(t)

	exitCode, stdout, stderr := testcli.Main(t, []string{"flo", "completion", "tcsh"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "", stdout)
	assert.Contains(t, stderr, `invalid argument "tcsh"`)
}

func TestCompleteQuery(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "demo", root)

	exitCode, stdout, _ := testcli.Main(t, []string{"flo", "--config", cfgPath, "__complete", "path", "fe"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "feature")
	assert.NotContains(t, stdout, "main\n")
}

func TestLogFile(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "solo")[0]
	cfgPath := writeConfig(t, "", "solo", root)
	logPath := filepath.Join(t.TempDir(), "flo.log")

	exitCode, _, stderr := testcli.Main(t, []string{"flo", "--config", cfgPath, "-v", "--log-file", logPath, "list"}, nil, run)
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "git worktree list --porcelain")
	assert.Equal(t, stderr, string(data), "the log file mirrors stderr")
}
