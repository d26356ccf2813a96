// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/export"
	"github.com/jeranaias/tracechat-tui/internal/ui/components"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

type askOptions struct {
	attach []string
	noWait bool
	format string
}

func newAskCmd(app *App) *cobra.Command {
	opts := &askOptions{}
	cmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Send one message and print the exchange",
		Long: `Send a single message to the agent without starting the interface.
The message is read from stdin when no arguments are given.

The exchange is printed as a transcript, including the reasoning trace.`,
		Example: `  tracechat ask "summarise this file" --attach notes.md
  echo "hello" | tracechat ask --no-wait
  tracechat ask --format markdown "plan the migration" > plan.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, opts, args)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.attach, "attach", "a", nil, "attach a file (repeatable)")
	cmd.Flags().BoolVar(&opts.noWait, "no-wait", false, "skip the simulated reply delay")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, markdown or json")
	return cmd
}

func runAsk(cmd *cobra.Command, app *App, opts *askOptions, args []string) error {
	var exporter export.Exporter
	if opts.format != "text" {
		var err error
		if exporter, err = export.ForFormat(opts.format, nil); err != nil {
			return usageError("ask", err.Error())
		}
	}

	text := strings.Join(args, " ")
	if len(args) == 0 && !isTerminalReader(cmd.InOrStdin()) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return &CommandError{Command: "ask", Action: "read stdin", Err: err}
		}
		text = string(data)
	}

	files := make([]composer.FileHandle, 0, len(opts.attach))
	for _, path := range opts.attach {
		f, err := composer.FromPath(path)
		if err != nil {
			return &CommandError{Command: "ask", Action: "attach " + path, Err: err, Code: ExitUsageError}
		}
		files = append(files, f)
	}

	store := app.newStore()
	store.Create()
	svc := conversation.NewService(store, app.newResponder(opts.noWait), app.Logger)
	svc.Composer().SetDraft(text)
	svc.Composer().AddFiles(files...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, submitted, err := svc.Exchange(ctx)
	if !submitted {
		return usageError("ask", "nothing to send: give a message or --attach a file")
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errInterrupted
		}
		return &CommandError{Command: "ask", Action: "get reply", Err: err}
	}
	app.Logger.Debug("ask complete", zap.Int("files", len(files)))

	out := cmd.OutOrStdout()
	if exporter != nil {
		data, err := exporter.Export(export.FromStore(store))
		if err != nil {
			return &CommandError{Command: "ask", Action: "format output", Err: err}
		}
		_, err = out.Write(data)
		return err
	}

	msgs := svc.Messages()
	if ColorsEnabled(out) && isTerminal(out) {
		theme := styles.NewTheme(styles.ParseMode(app.Config.UI.Theme))
		fmt.Fprintln(out, components.StyledTranscript(msgs, theme, terminalWidth(out), app.Config.UI.Markdown))
		return nil
	}
	fmt.Fprint(out, components.PlainTranscript(msgs))
	return nil
}
