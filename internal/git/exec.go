package git

import (
	"context"
	"fmt"

	"github.com/flo-cli/flo/internal/cmd"
)

// outputGit runs git in dir with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, dir, "git", args...)
}

// ListWorktrees runs `git worktree list --porcelain` with root as the
// working directory and returns the raw output.
func ListWorktrees(ctx context.Context, root string) (string, error) {
	out, err := outputGit(ctx, root, "worktree", "list", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("list worktrees in %s: %w", root, err)
	}
	return string(out), nil
}
