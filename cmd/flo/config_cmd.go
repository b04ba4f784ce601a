package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/log"
	"github.com/flo-cli/flo/internal/output"
	"github.com/flo-cli/flo/internal/ui/static"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage the flo configuration.

The config file is read from --config, $FLO_CONFIG,
$XDG_CONFIG_HOME/flo/flo.jsonc or ~/.config/flo/flo.jsonc.
The file extension selects the format: .jsonc/.json, .toml or .yaml/.yml.`,
		Example: `  flo config init          # Create the default config
  flo config path          # Print the config location
  flo config show          # Show the configured projects`,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigPathCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  flo config init                      # Create the default config
  flo config init -f                   # Overwrite an existing config
  flo config init -s                   # Print the config to stdout
  flo --config ~/flo.toml config init  # Create a TOML config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := a.configFile()

			if stdout {
				output.FromContext(ctx).Print(config.Template(path))
				return nil
			}

			if err := config.Init(path, force); err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Println(a.configFile())
			return nil
		},
	}
}

func newConfigShowCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := a.loadConfig(ctx)

			if jsonOutput {
				if cfg.Projects == nil {
					cfg.Projects = []config.Project{}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			out.Printf("# config: %s\n", cfg.Path)
			if cfg.BaseDir != "" {
				out.Printf("# base_dir: %s\n", cfg.BaseDir)
			}
			if len(cfg.Projects) == 0 {
				out.Println("# no projects")
				return nil
			}

			rows := make([][]string, 0, len(cfg.Projects))
			for _, p := range cfg.Projects {
				rows = append(rows, []string{p.Name, p.Root})
			}
			out.Print(static.RenderTable([]string{"NAME", "ROOT"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
