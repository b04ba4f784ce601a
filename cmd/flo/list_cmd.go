package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/git"
	"github.com/flo-cli/flo/internal/log"
	"github.com/flo-cli/flo/internal/output"
	"github.com/flo-cli/flo/internal/project"
	"github.com/flo-cli/flo/internal/ui/progress"
	"github.com/flo-cli/flo/internal/watch"
)

// watchMemoTTL collapses refreshes that arrive close together in watch mode.
const watchMemoTTL = 2 * time.Second

func newListCmd(a *app) *cobra.Command {
	var (
		jsonOutput bool
		filter     string
		watchMode  bool
		interval   time.Duration
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the worktrees of all projects",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List one entry per git worktree of every configured project.

Projects appear in config file order, worktrees in the order git reports
them. A project whose worktrees cannot be listed is skipped.`,
		Example: `  flo list                  # Table of all worktrees
  flo list --json           # Output as JSON
  flo list -f api           # Only entries matching "api"
  flo list --watch          # Redraw when the config or worktrees change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := git.CheckGit(); err != nil {
				return err
			}

			opts := listOptions{json: jsonOutput, filter: filter}
			if watchMode {
				return a.watchList(ctx, opts, interval)
			}

			cfg := a.loadConfig(ctx)
			result := a.resolveWithSpinner(ctx, cfg)
			return a.renderList(ctx, cfg, result, opts)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show entries fuzzy-matching this query")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Redraw when the config file changes and on every interval")
	cmd.Flags().DurationVar(&interval, "interval", 10*time.Second, "Refresh interval in watch mode (0 disables polling)")

	return cmd
}

type listOptions struct {
	json   bool
	filter string
	clear  bool
}

// resolve discovers the worktrees of every project in cfg.
func resolve(ctx context.Context, cfg config.Config) project.Result {
	nodes, warnings := project.NewResolver().Resolve(ctx, cfg.Projects)
	return project.Result{Nodes: nodes, Warnings: warnings, ResolvedAt: time.Now()}
}

// resolveWithSpinner resolves behind a spinner on stderr when it is a terminal.
func (a *app) resolveWithSpinner(ctx context.Context, cfg config.Config) project.Result {
	if a.quiet || len(cfg.Projects) == 0 {
		return resolve(ctx, cfg)
	}
	sp := progress.NewSpinner(a.stderr, fmt.Sprintf("Loading %d projects", len(cfg.Projects)))
	sp.Start()
	defer sp.Stop()
	return resolve(ctx, cfg)
}

// reportWarnings surfaces per-project failures. Invalid roots and
// malformed git output are printed, failed discovery only shows up with
// --verbose.
func reportWarnings(ctx context.Context, warnings []project.Warning) {
	l := log.FromContext(ctx)
	for _, w := range warnings {
		switch w.Kind {
		case project.WarnInvalidRoot, project.WarnMalformedRecord:
			l.Printf("Warning: %v\n", w)
		default:
			l.Debug("skipping project", "project", w.Project, "err", w.Err)
		}
	}
}

func (a *app) renderList(ctx context.Context, cfg config.Config, result project.Result, opts listOptions) error {
	out := output.FromContext(ctx)
	reportWarnings(ctx, result.Warnings)

	entries := project.Flatten(result.Nodes)
	entries = project.Search(entries, cfg.BaseDir, opts.filter)

	if opts.clear {
		out.Print("\033[H\033[2J")
	}
	return writeEntries(out, cfg, entries, opts)
}

// watchList redraws the list whenever the config file changes and on
// every interval, until ctx is cancelled.
func (a *app) watchList(ctx context.Context, opts listOptions, interval time.Duration) error {
	l := log.FromContext(ctx)
	path := a.configFile()
	opts.clear = !opts.json && progress.IsTerminal(a.stdout)

	var (
		cfg         config.Config
		lastWarning string
	)
	memo := project.NewMemo(watchMemoTTL, func(ctx context.Context) project.Result {
		loaded, err := config.Load(path)
		warning := ""
		if err != nil {
			warning = err.Error()
		}
		// Repeat a config warning only when it changes.
		if warning != "" && warning != lastWarning {
			l.Printf("Warning: %s\n", warning)
		}
		lastWarning = warning
		cfg = loaded
		return resolve(ctx, cfg)
	})

	result := memo.Get(ctx)
	if err := a.renderList(ctx, cfg, result, opts); err != nil {
		return err
	}

	err := watch.File(ctx, path, interval, func(reason watch.Reason) {
		l.Debug("refreshing", "reason", reason)
		if reason == watch.ConfigChanged {
			memo.Invalidate()
		}
		result := memo.Get(ctx)
		if err := a.renderList(ctx, cfg, result, opts); err != nil {
			l.Printf("Warning: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
