package main

import (
	"github.com/sivaosorg/synclog"
	"github.com/spf13/cobra"
)

func newDynamicCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dynamic",
		Short: "Change the threshold while logging",
		Long: `Starts at the --level threshold, then switches to DEBUG and WARN,
logging the same kinds of records after each change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.consoleLogger(cmd)

			err := firstErr(
				logger.Info("Application started at {} level", logger.Level()),
				logger.Debug("Debug message - hidden unless the threshold allows it"),
			)
			if err != nil {
				return err
			}

			logger.SetLevel(synclog.DebugIssuer)
			err = firstErr(
				logger.Info("Switched to {} level", logger.Level()),
				logger.Debug("Debug message - now visible!"),
			)
			if err != nil {
				return err
			}

			logger.SetLevel(synclog.WarnIssuer)
			return firstErr(
				logger.Info("Info message - won't show"),
				logger.Debug("Debug message - won't show"),
				logger.Warn("Warning message - this shows!"),
				logger.Error("Error message - this shows too!"),
			)
		},
	}
}
