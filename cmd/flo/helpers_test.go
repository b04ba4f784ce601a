package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeGitScript answers `git worktree list --porcelain` based on the name
// of the directory it runs in.
const fakeGitScript = `#!/bin/sh
dir=$(pwd -P)
case "$(basename "$dir")" in
bad)
	printf 'worktree %s\n\nHEAD 1f2e3d\nbranch refs/heads/orphan\n' "$dir"
	;;
multi)
	printf 'worktree %s\nHEAD 1f2e3d\nbranch refs/heads/main\n\nworktree %s/wt2\nHEAD 4c5b6a\nbranch refs/heads/feature\n' "$dir" "$dir"
	;;
*)
	printf 'worktree %s\nHEAD 1f2e3d\nbranch refs/heads/main\n' "$dir"
	;;
esac
`

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// installFakeGit puts fakeGitScript first on PATH.
func installFakeGit(t *testing.T) {
	t.Helper()
	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "git"), []byte(fakeGitScript), 0755); err != nil {
		t.Fatalf("failed to write fake git: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// isolateEnv keeps the user's config and color settings out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("FLO_CONFIG", "")
	t.Setenv("CLICOLOR_FORCE", "")
}

// mkdirs creates dir/name for each name and returns the created paths.
func mkdirs(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(p, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
		paths = append(paths, p)
	}
	return paths
}

// writeConfig writes a JSONC config declaring projects (name, root pairs)
// and returns its path.
func writeConfig(t *testing.T, baseDir string, projects ...string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("{\n")
	if baseDir != "" {
		b.WriteString(`  "base_dir": "` + baseDir + "\",\n")
	}
	b.WriteString("  \"projects\": {\n")
	for i := 0; i+1 < len(projects); i += 2 {
		b.WriteString(`    "` + projects[i] + `": { "root": "` + projects[i+1] + "\" },\n")
	}
	b.WriteString("  },\n}\n")

	path := filepath.Join(t.TempDir(), "flo.jsonc")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
