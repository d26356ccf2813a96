// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/logging"
	"github.com/jeranaias/tracechat-tui/internal/responder"
	"github.com/jeranaias/tracechat-tui/internal/session"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// App carries what every command needs after flag parsing: the effective
// config, where it came from, and the logger.
type App struct {
	Config     *config.Config
	ConfigPath string // empty when running on defaults
	Logger     *zap.Logger
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configPath string
	theme      string
	delay      time.Duration
	verbose    bool
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the command tree. Each call returns a fresh tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	app := &App{}

	root := &cobra.Command{
		Use:   "tracechat",
		Short: "Terminal chat with an agent that shows its reasoning",
		Long: `tracechat is a terminal chat client. Every agent reply carries a
"Chain of Thought" trace whose steps can be expanded to show their details.

Run without arguments to start the interactive interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.tracechat/config.toml)")
	pf.StringVar(&flags.theme, "theme", "", "color theme: light, dark or auto")
	pf.DurationVar(&flags.delay, "delay", config.DefaultDelay, "simulated reply delay")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newAskCmd(app),
		newConfigCmd(app, flags),
		newVersionCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *App) setup(cmd *cobra.Command, flags *globalFlags) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if flags.configPath != "" {
		path = flags.configPath
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return &CommandError{Command: cmd.Name(), Action: "load config", Err: err, Code: ExitConfigError}
	}

	if flags.theme != "" {
		cfg.UI.Theme = strings.ToLower(flags.theme)
	}
	if cmd.Flags().Changed("delay") {
		cfg.Responder.Delay = config.Duration(flags.delay)
	}
	if err := cfg.Validate(); err != nil {
		return &CommandError{Command: cmd.Name(), Action: "validate flags", Err: err, Code: ExitUsageError}
	}

	if cfg.Logging.File == "" {
		if cfg.Logging.File, err = config.DefaultLogFile(); err != nil {
			return &CommandError{Command: cmd.Name(), Action: "locate log file", Err: err, Code: ExitConfigError}
		}
	}
	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: flags.verbose,
	})
	if err != nil {
		return &CommandError{Command: cmd.Name(), Action: "open log", Err: err, Code: ExitConfigError}
	}

	a.Config = cfg
	a.ConfigPath = path
	a.Logger = logger

	source := path
	if source == "" {
		source = "defaults"
	}
	logger.Info("starting",
		zap.String("command", cmd.Name()),
		zap.String("version", Version),
		zap.String("config", source),
		zap.String("theme", cfg.UI.Theme),
		zap.Duration("delay", cfg.Responder.Delay.Std()),
	)
	return nil
}

// newStore builds a session store labelled from the config.
func (a *App) newStore() *session.Store {
	return session.NewStore(session.Config{
		NewTitle:      a.Config.Session.NewTitle,
		FallbackTitle: a.Config.Session.FallbackTitle,
		Logger:        a.Logger,
	})
}

// newResponder builds the simulated agent. noWait drops the delay.
func (a *App) newResponder(noWait bool) *responder.Mock {
	delay := a.Config.Responder.Delay.Std()
	if noWait {
		delay = 0
	}
	mock := responder.NewMock(delay)
	mock.Content = a.Config.Responder.Reply
	return mock
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return run(NewRootCmd(), nil, nil)
}

// run executes root, optionally with explicit args and error output.
func run(root *cobra.Command, args []string, errOut io.Writer) int {
	if args != nil {
		root.SetArgs(args)
	}
	if errOut != nil {
		root.SetErr(errOut)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), FormatError(err))
		return ExitCode(err)
	}
	return ExitSuccess
}
