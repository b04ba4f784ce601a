package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/git"
	"github.com/flo-cli/flo/internal/log"
)

// DefaultLimit bounds concurrent git invocations.
const DefaultLimit = 8

// Lister runs the worktree discovery command for a project root.
type Lister interface {
	ListWorktrees(ctx context.Context, root string) (string, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context, root string) (string, error)

// ListWorktrees calls f.
func (f ListerFunc) ListWorktrees(ctx context.Context, root string) (string, error) {
	return f(ctx, root)
}

// Resolver turns configured projects into project nodes.
type Resolver struct {
	Lister Lister
	Limit  int
}

// NewResolver returns a Resolver backed by `git worktree list --porcelain`.
func NewResolver() *Resolver {
	return &Resolver{Lister: ListerFunc(git.ListWorktrees), Limit: DefaultLimit}
}

// Resolve lists the worktrees of every project in parallel.
//
// Nodes are returned in config order, one per project. A project whose
// root is invalid, whose discovery fails or whose output cannot be parsed
// gets a node without children and a Warning; the other projects are unaffected. Resolve
// waits for every project to settle and never fails as a whole.
func (r *Resolver) Resolve(ctx context.Context, projects []config.Project) ([]Node, []Warning) {
	type result struct {
		node    Node
		warning *Warning
	}
	results := make([]result, len(projects))

	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range projects {
		g.Go(func() error {
			node, warn := r.resolveProject(gctx, p)
			results[i] = result{node: node, warning: warn}
			return nil // per-project failures are warnings
		})
	}
	_ = g.Wait()

	nodes := make([]Node, 0, len(results))
	var warnings []Warning
	for _, res := range results {
		nodes = append(nodes, res.node)
		if res.warning != nil {
			warnings = append(warnings, *res.warning)
		}
	}
	return nodes, warnings
}

func (r *Resolver) resolveProject(ctx context.Context, p config.Project) (Node, *Warning) {
	l := log.FromContext(ctx)
	node := Node{Name: p.Name, Directory: p.Root}

	if err := checkRoot(p.Root); err != nil {
		l.Debug("invalid root", "project", p.Name, "root", p.Root)
		return node, &Warning{Project: p.Name, Kind: WarnInvalidRoot, Err: err}
	}

	var warning *Warning
	raw, err := r.Lister.ListWorktrees(ctx, p.Root)
	if err != nil {
		l.Debug("worktree discovery failed", "project", p.Name, "root", p.Root, "err", err)
		warning = &Warning{Project: p.Name, Kind: WarnDiscoveryFailed, Err: err}
		raw = ""
	}

	worktrees, err := git.ParseWorktreeList(p.Root, raw)
	if err != nil {
		l.Debug("malformed worktree list", "project", p.Name, "root", p.Root)
		return node, &Warning{Project: p.Name, Kind: WarnMalformedRecord, Err: err}
	}

	node.Children = make([]Node, 0, len(worktrees))
	for _, wt := range worktrees {
		node.Children = append(node.Children, childNode(wt))
	}
	l.Debug("resolved project", "project", p.Name, "worktrees", len(node.Children))
	return node, warning
}

// checkRoot rejects roots git would resolve against the current directory.
func checkRoot(root string) error {
	if root == "" {
		return errors.New("root must not be empty")
	}
	if !filepath.IsAbs(root) {
		return fmt.Errorf("root must be absolute or start with ~, got: %q", root)
	}
	return nil
}
