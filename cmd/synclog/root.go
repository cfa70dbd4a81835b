package main

import (
	"github.com/sivaosorg/synclog"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	level synclog.Severity
	color synclog.ColorMode
}

func newRootCmd() *cobra.Command {
	opts := &options{level: synclog.InfoIssuer, color: synclog.ColorAuto}

	cmd := &cobra.Command{
		Use:   "synclog",
		Short: "Demonstrates the synclog synchronous logger",
		Long: `synclog writes leveled records to the console or to a file.

Examples:
  synclog console --level trace              # One record per severity
  synclog format                             # {} placeholder substitution
  synclog dynamic                            # Threshold changes at runtime
  synclog workers --file workers.log         # Concurrent writers, one file`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().Var(&opts.level, "level", "minimum severity (trace, debug, info, warn, error, fatal)")
	cmd.PersistentFlags().Var(&opts.color, "color", "console coloring (auto, always, never)")

	cmd.AddCommand(newConsoleCmd(opts))
	cmd.AddCommand(newFormatCmd(opts))
	cmd.AddCommand(newDynamicCmd(opts))
	cmd.AddCommand(newWorkersCmd(opts))

	return cmd
}

// consoleLogger builds a console logger writing to the command's output.
func (o *options) consoleLogger(cmd *cobra.Command) *synclog.Logger {
	return synclog.NewConsole(
		synclog.WithWriter(cmd.OutOrStdout()),
		synclog.WithLevel(o.level),
		synclog.WithColorMode(o.color),
	)
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
