package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/flo-cli/flo/internal/git"
	"github.com/flo-cli/flo/internal/log"
	"github.com/flo-cli/flo/internal/output"
	"github.com/flo-cli/flo/internal/project"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func newPathCmd(a *app) *cobra.Command {
	var (
		copyValue bool
		branch    bool
	)

	cmd := &cobra.Command{
		Use:     "path <query>...",
		Short:   "Print the directory of the best matching worktree",
		Aliases: []string{"p"},
		GroupID: GroupCore,
		Args:    cobra.MinimumNArgs(1),
		Long: `Print the directory of the worktree that best matches the query.

The query is fuzzy-matched against each worktree's branch, project name and
directory segments. With --branch the branch is printed instead.`,
		Example: `  cd "$(flo path api)"       # Jump to the best match
  flo path api fix --branch   # Print the branch of the best match
  flo path api --copy         # Also copy the directory to the clipboard`,
		ValidArgsFunction: a.completeQuery,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if err := git.CheckGit(); err != nil {
				return err
			}

			cfg := a.loadConfig(ctx)
			result := a.resolveWithSpinner(ctx, cfg)
			reportWarnings(ctx, result.Warnings)

			query := strings.Join(args, " ")
			matches := project.Search(project.Flatten(result.Nodes), cfg.BaseDir, query)
			if len(matches) == 0 {
				return fmt.Errorf("no worktree matches %q", query)
			}
			for i, m := range matches[:min(5, len(matches))] {
				l.Debug("candidate", "rank", i+1, "title", m.Title(), "subtitle", m.Subtitle(cfg.BaseDir))
			}
			best := matches[0]

			value := best.Directory
			if branch {
				value = best.Branch
			}

			if copyValue {
				if err := copyToClipboard(value); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Printf("Copied %s to clipboard\n", value)
			}

			out.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyValue, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVarP(&branch, "branch", "b", false, "Print the branch instead of the directory")

	return cmd
}
