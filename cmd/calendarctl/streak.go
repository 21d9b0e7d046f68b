package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-calendar/internal/streak"
)

func streakCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.app.Streak.Get(cmd.Context())
			if err != nil {
				return err
			}
			printStreak(c.out, s)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "record",
		Short: "Mark today as active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.app.Streak.Record(cmd.Context(), c.now())
			if err != nil {
				return err
			}
			printStreak(c.out, s)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the streak to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.app.Streak.Reset(cmd.Context())
			if err != nil {
				return err
			}
			printStreak(c.out, s)
			return nil
		},
	})

	return cmd
}

func printStreak(w io.Writer, s streak.State) {
	if s.LastActiveDate == "" {
		fmt.Fprintf(w, "Streak: %d day(s)\n", s.Count)
		return
	}
	fmt.Fprintf(w, "Streak: %d day(s), last active %s\n", s.Count, s.LastActiveDate)
}
