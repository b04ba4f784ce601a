package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flo-cli/flo/internal/cmd"
)

// setupTestRepo creates a git repo on branch main with one commit and
// returns its symlink-resolved path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	if err := CheckGit(); err != nil {
		t.Skip(err)
	}

	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	run := func(dir string, args ...string) {
		t.Helper()
		if _, err := cmd.OutputContext(ctx, dir, "git", args...); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}

	run("", "init", "-b", "main", repoPath)
	run(repoPath, "config", "user.email", "test@test.com")
	run(repoPath, "config", "user.name", "Test User")
	run(repoPath, "config", "commit.gpgsign", "false")
	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	run(repoPath, "add", "README.md")
	run(repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

func TestListWorktrees(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	ctx := context.Background()

	linked := filepath.Join(filepath.Dir(repo), "test-repo-feature")
	if _, err := cmd.OutputContext(ctx, repo, "git", "worktree", "add", "-b", "feature", linked); err != nil {
		t.Fatalf("failed to add worktree: %v", err)
	}

	raw, err := ListWorktrees(ctx, repo)
	if err != nil {
		t.Fatalf("ListWorktrees() error = %v", err)
	}

	worktrees, err := ParseWorktreeList(repo, raw)
	if err != nil {
		t.Fatalf("ParseWorktreeList() error = %v", err)
	}
	if len(worktrees) != 2 {
		t.Fatalf("got %d worktrees, want 2: %+v", len(worktrees), worktrees)
	}

	main, feature := worktrees[0], worktrees[1]
	if main.Path != repo || main.Branch != "main" || !main.IsMainWorktree {
		t.Errorf("main worktree = %+v", main)
	}
	if feature.Path != linked || feature.Branch != "feature" || feature.IsMainWorktree {
		t.Errorf("linked worktree = %+v", feature)
	}
	if main.Head == "" {
		t.Error("HEAD should be populated")
	}
}

func TestListWorktrees_NotARepo(t *testing.T) {
	t.Parallel()

	if err := CheckGit(); err != nil {
		t.Skip(err)
	}
	if _, err := ListWorktrees(context.Background(), t.TempDir()); err == nil {
		t.Error("ListWorktrees() outside a repo = nil, want error")
	}
}

func TestListWorktrees_MissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := ListWorktrees(context.Background(), "/nonexistent/flo-project"); err == nil {
		t.Error("ListWorktrees() in missing dir = nil, want error")
	}
}
