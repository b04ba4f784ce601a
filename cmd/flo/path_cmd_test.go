package main

import (
	"errors"
	"path/filepath"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "demo", root)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"branch query", []string{"path", "feature"}, filepath.Join(root, "wt2") + "\n"},
		{"main worktree", []string{"path", "main"}, root + "\n"},
		{"multiple words", []string{"path", "demo", "wt2"}, filepath.Join(root, "wt2") + "\n"},
		{"print branch", []string{"path", "wt2", "--branch"}, "feature\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"flo", "--config", cfgPath}, tt.args...)
			exitCode, stdout, stderr := testcli.Main(t, args, nil, run)
			assert.Equal(t, 0, exitCode, "stderr: %s", stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestPathNoMatch(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "demo", root)

	exitCode, stdout, stderr := testcli.Main(t, []string{"flo", "--config", cfgPath, "path", "qxqxqx"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "", stdout)
	assert.Contains(t, stderr, `no worktree matches "qxqxqx"`)
}

func TestPathRequiresQuery(t *testing.T) {
	isolateEnv(t)

	exitCode, _, stderr := testcli.Main(t, []string{"flo", "path"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "requires at least 1 arg")
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return err
	}
	t.Cleanup(func() { copyToClipboard = orig })
	return &copied
}

func TestPathCopy(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "demo", root)

	copied := stubClipboard(t, nil)
	exitCode, stdout, stderr := testcli.Main(t, []string{"flo", "--config", cfgPath, "path", "feature", "--copy"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, filepath.Join(root, "wt2"), *copied)
	assert.Equal(t, filepath.Join(root, "wt2")+"\n", stdout)
	assert.Contains(t, stderr, "Copied")

	copied = stubClipboard(t, nil)
	exitCode, stdout, _ = testcli.Main(t, []string{"flo", "--config", cfgPath, "-q", "path", "feature", "--copy", "-b"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "feature", *copied)
	assert.Equal(t, "feature\n", stdout)
}

func TestPathCopyFailure(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "demo", root)

	stubClipboard(t, errors.New("no clipboard utility"))
	exitCode, _, stderr := testcli.Main(t, []string{"flo", "--config", cfgPath, "path", "feature", "--copy"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "copy to clipboard: no clipboard utility")
}

func TestPathVerboseListsCandidates(t *testing.T) {
	isolateEnv(t)
	installFakeGit(t)

	dir := resolvePath(t, t.TempDir())
	root := mkdirs(t, dir, "multi")[0]
	cfgPath := writeConfig(t, dir, "my_demo", root)

	exitCode, _, stderr := testcli.Main(t, []string{"flo", "--config", cfgPath, "-v", "path", "wt2"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "candidate rank=1 title=my demo subtitle=<feature>   multi/wt2")
}
