// Package git discovers the worktrees of a repository by shelling out to
// the git CLI and parsing its porcelain output.
//
// Only one git operation is used: `git worktree list --porcelain`. Its
// output is a sequence of blank-line separated records:
//
//	worktree /src/demo
//	HEAD 3f1c2a...
//	branch refs/heads/main
//
//	worktree /src/demo-feature
//	HEAD 9ab04e...
//	detached
//	locked on external drive
//
// [ParseWorktreeList] turns that text into [Worktree] records and
// [NormalizeBranch] strips ref namespaces from branch names. Running the
// command is separate ([ListWorktrees]) so the parser stays a pure
// function that tests can feed fixture text.
package git
