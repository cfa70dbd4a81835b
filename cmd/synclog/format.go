package main

import (
	"github.com/spf13/cobra"
)

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Show {} placeholder substitution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.consoleLogger(cmd)

			processed, total := 150, 200
			return firstErr(
				logger.Info("Server listening on port {}", 8080),
				logger.Info("User '{}' connected from {}", "bob", "192.168.1.100"),
				logger.Warn("Memory usage: {}%", 90),
				logger.Info("Processed {} of {} items ({}% complete)", processed, total, processed*100/total),
				logger.Info("Load average {0:.2f}, {2} before {1}", 1.5, "first", "second"),
			)
		},
	}
}
