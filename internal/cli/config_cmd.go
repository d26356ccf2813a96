// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeranaias/tracechat-tui/internal/config"
)

func newConfigCmd(app *App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigPathCmd(app),
		newConfigInitCmd(flags),
	)
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(format)
			switch f {
			case config.FormatTOML, config.FormatJSON, config.FormatYAML:
			default:
				return usageError("config show", fmt.Sprintf("unknown format %q (want toml, json or yaml)", format))
			}
			data, err := config.Encode(app.Config, f)
			if err != nil {
				return &CommandError{Command: "config show", Action: "encode", Err: err}
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), "output format: toml, json or yaml")
	return cmd
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())
			loaded := app.ConfigPath
			if loaded == "" {
				loaded = "defaults"
			}
			p.field("loaded", loaded)
			paths, err := config.ConfigPaths()
			if err != nil {
				return &CommandError{Command: "config path", Action: "list candidates", Err: err, Code: ExitConfigError}
			}
			for _, c := range paths {
				p.field("candidate", c)
			}
			return nil
		},
	}
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		// The target file may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				dir, err := config.ConfigDir()
				if err != nil {
					return &CommandError{Command: "config init", Action: "locate config dir", Err: err, Code: ExitConfigError}
				}
				path = filepath.Join(dir, "config.toml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return usageError("config init", path+" already exists (use --force to overwrite)")
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return &CommandError{Command: "config init", Action: "check " + path, Err: err, Code: ExitConfigError}
			}
			if err := config.Save(config.Default(), path); err != nil {
				return &CommandError{Command: "config init", Action: "write " + path, Err: err, Code: ExitConfigError}
			}
			p := newPrinter(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), p.render(SuccessStyle, "Wrote")+" "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
