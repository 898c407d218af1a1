package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"asciirename/internal/config"
	"asciirename/internal/logging"
	"asciirename/internal/plan"
	"asciirename/internal/rename"
)

var version = "dev"

func newRootCommand(exitCode *int) *cobra.Command {
	var (
		configPath string
		noop       bool
		overwrite  bool
		recursive  bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "ascii-rename [flags] [paths...]",
		Short:         "Rename paths with non-ASCII names to shell-safe ASCII equivalents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "ascii-rename: try 'ascii-rename --help' for more information")
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Config supplies defaults; an explicit flag always wins.
			flags := cmd.Flags()
			if !flags.Changed("no-op") {
				noop = cfg.Rename.NoOp
			}
			if !flags.Changed("overwrite") {
				overwrite = cfg.Rename.Overwrite
			}
			if !flags.Changed("recursive") {
				recursive = cfg.Rename.Recursive
			}
			if !flags.Changed("verbose") {
				verbose = cfg.Rename.Verbose
			}

			// Verbose runs surface the per-operation records.
			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(logging.Options{
				Level:  level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			logger = logging.WithRun(logger, uuid.NewString())

			if cfg.Run.LockEnabled && !noop {
				unlock, err := acquireRunLock(cfg.Run.LockPath)
				if err != nil {
					return err
				}
				defer unlock()
			}

			builder := plan.NewBuilder(recursive, nil, logger)
			for _, arg := range args {
				if err := builder.Add(arg); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
				}
			}
			ops := builder.Ops()
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Collected %d path components to process.\n", len(ops))
			}

			reporter := newConsoleReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), noop, verbose)
			executor := rename.NewExecutor(rename.Options{
				DryRun:      noop,
				Overwrite:   overwrite,
				Placeholder: cfg.PlaceholderRune(),
				Reporter:    reporter,
			}, logger)
			result := executor.Run(ops)

			if verbose {
				printSummary(cmd.OutOrStdout(), result)
			}
			*exitCode = result.ExitCode()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&noop, "no-op", "n", false, "Show what would happen but don't actually rename path(s)")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "Overwrite existing path(s)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Rename files and subdirectories recursively")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Make the output more verbose")
	cmd.Flags().BoolP("version", "V", false, "Show version number and exit")

	return cmd
}

// acquireRunLock takes the advisory lock guarding concurrent invocations and
// returns its release func.
func acquireRunLock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("prepare run lock: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another ascii-rename run holds %s", path)
	}
	return func() { _ = lock.Unlock() }, nil
}
