package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-calendar/config"
	"task-calendar/internal/app"
	"task-calendar/pkg/log"
)

var Version = "dev"

// cli carries what every subcommand needs. open is swapped out in tests.
type cli struct {
	open func(ctx context.Context, verbose bool) (*app.App, func() error, error)
	now  func() time.Time
	out  io.Writer

	verbose bool
	app     *app.App
	closeFn func() error
}

func main() {
	c := &cli{open: openFromConfig, now: time.Now, out: os.Stdout}
	if err := newRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calendarctl",
		Short:         "Manage calendar subtasks, reminders, activity and streaks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := c.open(cmd.Context(), c.verbose)
			if err != nil {
				return err
			}
			c.app, c.closeFn = a, closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeFn == nil {
				return nil
			}
			return c.closeFn()
		},
	}
	rootCmd.SetOut(c.out)
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at the configured level instead of errors only")

	rootCmd.AddCommand(listCmd(c))
	rootCmd.AddCommand(addCmd(c))
	rootCmd.AddCommand(updateCmd(c))
	rootCmd.AddCommand(deleteCmd(c))
	rootCmd.AddCommand(remindCmd(c))
	rootCmd.AddCommand(activityCmd(c))
	rootCmd.AddCommand(streakCmd(c))

	return rootCmd
}

func openFromConfig(ctx context.Context, verbose bool) (*app.App, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.Build(ctx, cfg, l)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Close, nil
}
