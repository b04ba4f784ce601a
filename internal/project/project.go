package project

import (
	"fmt"

	"github.com/flo-cli/flo/internal/git"
)

// Node is a resolved project or one of its worktrees.
//
// Project nodes have an empty Branch and one child per worktree, in the
// order git listed them. Child nodes are named after their branch label
// and carry the parsed record.
type Node struct {
	Name      string
	Directory string
	Branch    string
	Children  []Node
	Worktree  git.Worktree
}

// Entry is one row of the flattened project list.
type Entry struct {
	DisplayName    string `json:"name"`
	Directory      string `json:"directory"`
	Branch         string `json:"branch"`
	IsMainWorktree bool   `json:"is_main_worktree"`
}

// WarningKind classifies a per-project resolution failure.
type WarningKind string

const (
	// WarnDiscoveryFailed means git could not list the worktrees.
	WarnDiscoveryFailed WarningKind = "discovery_failed"
	// WarnMalformedRecord means git's output contained a record without a path.
	WarnMalformedRecord WarningKind = "malformed_record"
	// WarnInvalidRoot means the configured root is empty or relative.
	WarnInvalidRoot WarningKind = "invalid_root"
)

// Warning is a non-fatal error scoped to one project.
type Warning struct {
	Project string
	Kind    WarningKind
	Err     error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Project, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// childNode builds the node for one worktree.
func childNode(wt git.Worktree) Node {
	label := wt.Label()
	return Node{
		Name:      label,
		Directory: wt.Path,
		Branch:    label,
		Worktree:  wt,
	}
}
