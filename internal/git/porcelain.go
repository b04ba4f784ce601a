package git

import (
	"fmt"
	"strings"
)

// Worktree is one record of `git worktree list --porcelain`.
type Worktree struct {
	Path           string `json:"path"`
	Branch         string `json:"branch,omitempty"`
	Head           string `json:"head,omitempty"`
	IsDetached     bool   `json:"is_detached,omitempty"`
	IsBare         bool   `json:"is_bare,omitempty"`
	IsLocked       bool   `json:"is_locked,omitempty"`
	LockReason     string `json:"lock_reason,omitempty"`
	IsPrunable     bool   `json:"is_prunable,omitempty"`
	PrunableReason string `json:"prunable_reason,omitempty"`
	IsMainWorktree bool   `json:"is_main_worktree"`
}

// Label returns the name shown for the worktree: its branch, else its
// HEAD commit, else "Bare".
func (w Worktree) Label() string {
	switch {
	case w.Branch != "":
		return w.Branch
	case w.Head != "":
		return w.Head
	default:
		return "Bare"
	}
}

// MalformedRecordError reports a porcelain record without a "worktree" line.
type MalformedRecordError struct {
	Block string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("couldn't match a directory in:\n%s", e.Block)
}

// branchPrefixes are stripped from branch names, each at most once, in order.
var branchPrefixes = []string{"refs/", "heads/", "remotes/", "origin/"}

// NormalizeBranch strips ref namespaces so "refs/remotes/origin/main"
// and "refs/heads/main" both become "main".
func NormalizeBranch(name string) string {
	for _, p := range branchPrefixes {
		name = strings.TrimPrefix(name, p)
	}
	return name
}

// lineRule maps a porcelain line to a field of the record being built.
// exact rules match the whole line; the others match a prefix and receive
// the remainder. Rules are tried in order and the first match wins, so the
// "locked " rule sits before the bare "locked" one.
type lineRule struct {
	prefix string
	exact  bool
	apply  func(w *Worktree, rest string)
}

var lineRules = []lineRule{
	{prefix: "worktree ", apply: func(w *Worktree, rest string) { w.Path = rest }},
	{prefix: "branch ", apply: func(w *Worktree, rest string) { w.Branch = NormalizeBranch(rest) }},
	{prefix: "HEAD ", apply: func(w *Worktree, rest string) { w.Head = rest }},
	{prefix: "detached", exact: true, apply: func(w *Worktree, _ string) { w.IsDetached = true }},
	{prefix: "bare", exact: true, apply: func(w *Worktree, _ string) { w.IsBare = true }},
	{prefix: "locked ", apply: func(w *Worktree, rest string) { w.IsLocked = true; w.LockReason = rest }},
	{prefix: "locked", apply: func(w *Worktree, _ string) { w.IsLocked = true }},
	{prefix: "prunable ", apply: func(w *Worktree, rest string) { w.IsPrunable = true; w.PrunableReason = rest }},
	{prefix: "prunable", apply: func(w *Worktree, _ string) { w.IsPrunable = true }},
}

// ParseWorktreeList parses the output of `git worktree list --porcelain`.
// Records are separated by a blank line and returned in input order;
// blank or whitespace-only records are skipped.
// root is the project's configured directory; a record whose path equals
// it exactly is marked as the main worktree.
//
// A record without a "worktree <path>" line fails the whole parse with a
// *MalformedRecordError.
func ParseWorktreeList(root, raw string) ([]Worktree, error) {
	var worktrees []Worktree
	for _, block := range strings.Split(raw, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		wt, err := parseRecord(block)
		if err != nil {
			return nil, err
		}
		wt.IsMainWorktree = wt.Path == root
		worktrees = append(worktrees, wt)
	}
	return worktrees, nil
}

func parseRecord(block string) (Worktree, error) {
	var wt Worktree
	seen := make(map[string]bool, len(lineRules))

	for _, line := range strings.Split(block, "\n") {
		for _, r := range lineRules {
			var rest string
			if r.exact {
				if line != r.prefix {
					continue
				}
			} else {
				var ok bool
				if rest, ok = strings.CutPrefix(line, r.prefix); !ok {
					continue
				}
				// "key value" rules need a value.
				if rest == "" && strings.HasSuffix(r.prefix, " ") {
					continue
				}
			}
			if !seen[r.prefix] {
				seen[r.prefix] = true
				r.apply(&wt, rest)
			}
			break
		}
	}

	if wt.Path == "" {
		return Worktree{}, &MalformedRecordError{Block: block}
	}
	return wt, nil
}
