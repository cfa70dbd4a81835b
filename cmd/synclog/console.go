package main

import (
	"github.com/spf13/cobra"
)

func newConsoleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Log one record at every severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.consoleLogger(cmd)

			return firstErr(
				logger.Trace("Application starting..."),
				logger.Debug("Loading configuration file from {}...", "config.yaml"),
				logger.Info("Server listening on port {}", 8080),
				logger.Warn("Cache is {}% full", 80),
				logger.Error("Failed to connect to database"),
				logger.Fatal("Out of memory!"),
			)
		},
	}
}
