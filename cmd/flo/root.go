package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/log"
	"github.com/flo-cli/flo/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// app carries global flags and the process streams into commands.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	logFile    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logSink io.Closer
}

// commandContext is replaced in tests.
var commandContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	ctx, cancel := commandContext()
	defer cancel()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if a.logSink != nil {
		a.logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Run 'flo -h' for help")
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flo",
		Short: "Jump between the git worktrees of your projects",
		Long: `flo lists every git worktree of the projects named in its config file
and finds the one you are looking for.

Projects are declared by name and main checkout. Each project expands into
one entry per worktree, labelled with its branch.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default $"+config.EnvConfigPath+" or ~/.config/flo/flo.jsonc)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Also write log output to this file (rotated)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd(a))

	return rootCmd
}

// setup attaches the logger and printer to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	logOut := a.stderr
	if a.logFile != "" {
		sink := log.NewFileWriter(a.logFile)
		a.logSink = sink
		logOut = log.Tee(a.stderr, sink)
	}

	ctx := log.WithLogger(cmd.Context(), log.New(logOut, a.verbose, a.quiet))
	ctx = output.WithPrinter(ctx, a.stdout)
	cmd.SetContext(ctx)
	return nil
}

// configFile returns the config path from --config or the default location.
func (a *app) configFile() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultPath()
}

// loadConfig loads the config, printing a warning when it is broken.
// A broken config still yields a usable, empty Config.
func (a *app) loadConfig(ctx context.Context) config.Config {
	cfg, err := config.Load(a.configFile())
	if err != nil {
		log.FromContext(ctx).Printf("Warning: %v\n", err)
	}
	return cfg
}
