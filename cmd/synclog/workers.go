package main

import (
	"github.com/sivaosorg/synclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newWorkersCmd(opts *options) *cobra.Command {
	var (
		path    string
		workers int
		tasks   int
		fsync   bool
	)

	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Log from concurrent goroutines into one file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := synclog.NewFile(path, synclog.WithLevel(opts.level), synclog.WithFsync(fsync))
			if err != nil {
				return err
			}
			defer logger.Close()

			var g errgroup.Group
			for w := 0; w < workers; w++ {
				w := w
				g.Go(func() error {
					for i := 0; i < tasks; i++ {
						if err := logger.Info("Worker {} processing task {}", w, i); err != nil {
							return err
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if err := logger.Info("All workers completed"); err != nil {
				return err
			}
			return logger.Close()
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "workers.log", "log file to append to")
	cmd.Flags().IntVarP(&workers, "workers", "w", 5, "number of concurrent goroutines")
	cmd.Flags().IntVarP(&tasks, "tasks", "n", 10, "records logged by each goroutine")
	cmd.Flags().BoolVar(&fsync, "fsync", false, "fsync the file after every record")

	return cmd
}
