package main

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/project"
)

// completeQuery completes path queries with the branches and project names
// of all worktrees. Config errors are ignored.
func (a *app) completeQuery(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _ := config.Load(a.configFile())
	nodes, _ := project.NewResolver().Resolve(ctx, cfg.Projects)

	var matches []string
	seen := make(map[string]bool)
	for _, e := range project.Flatten(nodes) {
		for _, candidate := range []string{e.Branch, e.DisplayName} {
			if seen[candidate] || !strings.HasPrefix(candidate, toComplete) {
				continue
			}
			seen[candidate] = true
			matches = append(matches, candidate)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completionScripts maps each supported shell to its script generator.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

func newCompletionCmd(a *app) *cobra.Command {
	shells := slices.Sorted(maps.Keys(completionScripts))
	return &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Print the completion script for a shell",
		GroupID:   GroupConfig,
		Long:      "Print the completion script for one of: " + strings.Join(shells, ", ") + ".",
		ValidArgs: shells,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  flo completion fish > ~/.config/fish/completions/flo.fish
  flo completion bash > ~/.local/share/bash-completion/completions/flo
  flo completion zsh > ~/.zfunc/_flo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionScripts[args[0]](cmd.Root(), a.stdout)
		},
	}
}
