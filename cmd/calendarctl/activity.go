package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-calendar/internal/activity"
	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

func activityCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Track minutes worked per day",
	}
	cmd.AddCommand(activityAddCmd(c))
	cmd.AddCommand(activityListCmd(c))
	cmd.AddCommand(activityRebuildCmd(c))
	return cmd
}

func activityAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <minutes>",
		Short: "Add minutes to a day; negative minutes remove time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(c.app.Parser, args[0], c.now())
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q", args[1])
			}
			out, err := c.app.Activity.AddTime(cmd.Context(), activity.AddTimeInput{Date: date, Minutes: minutes})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s: %d min\n", out.Date, out.TotalMinutes)
			return nil
		},
	}
}

func activityListCmd(c *cli) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show daily totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				in  activity.ListInput
				err error
			)
			if in.From, err = resolveDate(c.app.Parser, from, c.now()); err != nil {
				return err
			}
			if in.To, err = resolveDate(c.app.Parser, to, c.now()); err != nil {
				return err
			}
			out, err := c.app.Activity.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			printActivity(c, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Range start, inclusive")
	cmd.Flags().StringVar(&to, "to", "", "Range end, inclusive")
	return cmd
}

func activityRebuildCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Add the durations of completed subtasks to their days (not idempotent: each run adds again)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			done, err := c.app.Subtasks.List(ctx, subtask.ListInput{Status: model.StatusCompleted})
			if err != nil {
				return err
			}
			out, err := c.app.Activity.Repopulate(ctx, activity.RepopulateInput{Work: activity.WorkFromSubtasks(done.Subtasks)})
			if err != nil {
				return err
			}
			printActivity(c, out)
			return nil
		},
	}
}

func printActivity(c *cli, out activity.ListOutput) {
	if len(out.Activities) == 0 {
		fmt.Fprintln(c.out, "No activity")
		return
	}
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMINUTES")
	for _, a := range out.Activities {
		fmt.Fprintf(tw, "%s\t%d\n", a.Date, a.TotalMinutes)
	}
	tw.Flush()
}
