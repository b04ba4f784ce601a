// Package cmd runs external commands in a working directory and captures
// their output.
//
// Failures carry the command's stderr as the error message so callers can
// surface it directly:
//
//	out, err := cmd.OutputContext(ctx, "/src/demo", "git", "worktree", "list", "--porcelain")
//	if err != nil {
//	    // err.Error() == "fatal: not a git repository ..."
//	}
//
// Every invocation is traced through the context logger when verbose mode
// is on ("[dir] $ git worktree list --porcelain (12ms)").
package cmd
